package web

import (
	"errors"

	"statserver/internal/domain"
	"statserver/internal/web/webpath"
)

type data struct {
	Title  string
	Path   map[string]string
	Errors []string
	Data   map[string]any
}

func newData(title string) data {
	return data{
		Title: title,
		Path:  webpath.Path(),
		Data:  make(map[string]any),
	}
}

func (m data) With(key string, value any) data {
	if m.Data == nil {
		m.Data = make(map[string]any)
	}
	m.Data[key] = value
	return m
}

type multierr interface {
	Unwrap() []error
}

func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

// errorMessages flattens joined errors into client-facing detail strings,
// dropping the taxonomy sentinels themselves.
func errorMessages(err error) []string {
	var messages []string
	for _, err := range unwrap(err) {
		if err == domain.ErrValidation || err == domain.ErrStorage {
			continue
		}
		messages = append(messages, err.Error())
	}
	return messages
}
