package tui

// NavigateTo asks the active router to open another page or route.
type NavigateTo struct {
	Page string
	Path string
}

type challengeSentMsg struct {
	err error
}

type challengeResentMsg struct {
	err error
}

type codeVerifiedMsg struct {
	err error
}

type cooldownTickMsg struct{}

type permissionsLoadedMsg struct {
	err error
}

type logoutDoneMsg struct{}

type sessionExpiredMsg struct{}
