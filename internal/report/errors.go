package report

import "errors"

var (
	ErrUnknownTheme  = errors.New("report: unknown theme")
	ErrUnknownFormat = errors.New("report: unknown export format")
	ErrNoSeries      = errors.New("report: scenario has no compositions to plot")
)
