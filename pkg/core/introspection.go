package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Formats   []Format `json:"formats"`
	Generator string   `json:"generator,omitempty"`
	Written   int      `json:"documents_written"`
	LastError string   `json:"last_error,omitempty"`
	FileType  string   `json:"file_writer,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := ServiceState{
		Formats:   s.Formats(),
		Generator: s.generator,
		Written:   s.written,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	if s.files != nil {
		st.FileType = "file_writer"
		if comp, ok := s.files.(introspection.Component); ok {
			st.FileType = comp.ComponentType()
		}
	}
	return st
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "export_service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
