package tui

type drainSnapshotsMsg struct{}

type loginResultMsg struct {
	token string
	err   error
}
