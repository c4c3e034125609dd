package tui

import (
	"github.com/shristy0611/Wisdom-Bridge/internal/quote"
)

type guidanceMsg struct {
	theme  string
	lang   quote.Language
	quotes []quote.Quote
}

type guidanceErrMsg struct {
	err error
}

type qotdReadyMsg struct{}

type noticeMsg struct {
	text    string
	isError bool
}

type toastExpiredMsg struct{}

type updateMsg struct {
	version string
}
