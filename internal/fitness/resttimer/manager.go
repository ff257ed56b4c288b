package resttimer

import "sync"

// Manager hands out one timer per owner, created lazily with the configured
// default duration.
type Manager struct {
	mutex          sync.Mutex
	timers         map[string]*Timer
	defaultSeconds int
}

func NewManager(defaultSeconds int) *Manager {
	if defaultSeconds <= 0 {
		defaultSeconds = 90
	}
	return &Manager{
		timers:         make(map[string]*Timer),
		defaultSeconds: defaultSeconds,
	}
}

func (m *Manager) ForOwner(ownerID string) *Timer {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	timer, ok := m.timers[ownerID]
	if !ok {
		timer = NewTimer(m.defaultSeconds)
		m.timers[ownerID] = timer
	}
	return timer
}

// StopAll pauses every known timer, used on shutdown.
func (m *Manager) StopAll() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, timer := range m.timers {
		timer.Pause()
	}
}
