package mocks

import "context"

// Settings is a mock implementation of ports.Settings.
type Settings struct {
	Values map[string]string
	Err    error
}

// NewSettings creates an empty mock Settings.
func NewSettings() *Settings {
	return &Settings{Values: make(map[string]string)}
}

// Get returns the stored value.
func (m *Settings) Get(_ context.Context, key string) (string, bool, error) {
	if m.Err != nil {
		return "", false, m.Err
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set stores the value.
func (m *Settings) Set(_ context.Context, key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Values[key] = value
	return nil
}

// Delete removes the key.
func (m *Settings) Delete(_ context.Context, key string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Values, key)
	return nil
}
