package engine

import "sync"

var (
	sessionMux     sync.RWMutex
	currentSession Session
)

// InitSession installs the ambient engine session. Builders and requirement
// groups consult it exactly once, at construction, to pick their mode.
func InitSession(session Session) {
	sessionMux.Lock()
	defer sessionMux.Unlock()
	currentSession = session
}

// CurrentSession returns the ambient session, nil when none is active
func CurrentSession() Session {
	sessionMux.RLock()
	defer sessionMux.RUnlock()
	return currentSession
}

// ResetSession drops the ambient session. Already constructed builders keep
// their mode and their handles, they never migrate.
func ResetSession() {
	sessionMux.Lock()
	defer sessionMux.Unlock()
	currentSession = nil
}
