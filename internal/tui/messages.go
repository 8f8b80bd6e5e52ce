package tui

import "github.com/matheuskafuri/headlines/internal/dashboard"

type fetchDoneMsg struct {
	outcome dashboard.Outcome
}

type openErrMsg struct {
	err error
}
