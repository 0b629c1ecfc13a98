package tui

type copyResultMsg struct {
	seq    int
	length int
	err    error
}

type noticeExpiredMsg struct {
	seq int
}
