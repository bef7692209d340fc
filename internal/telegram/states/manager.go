package states

import (
	"fmt"
	"sync"

	"detransport-ads-bot/internal/telegram/flows"
)

// Manager хранит состояния диалогов в памяти. Сессии живут до рестарта
// процесса, истечения по времени нет: брошенный диалог висит пока
// пользователь не завершит его или не начнет заново.
type Manager struct {
	mu         sync.RWMutex
	userStates map[int64]State
	userData   map[int64]any
}

// NewManager создает новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		userStates: make(map[int64]State),
		userData:   make(map[int64]any),
	}
}

// GetState получает текущее состояние пользователя
func (m *Manager) GetState(userID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, exists := m.userStates[userID]
	if !exists {
		return StateNone
	}
	return state
}

// SetState устанавливает состояние пользователя
func (m *Manager) SetState(userID int64, state State, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.userStates[userID] = state
	if data != nil {
		m.userData[userID] = data
	}
}

// Clear очищает состояние пользователя
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.userStates, userID)
	delete(m.userData, userID)
}

// GetSubmitAdData получает данные флоу оформления рекламы
func (m *Manager) GetSubmitAdData(userID int64) (*flows.SubmitAdFlowData, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.userData[userID]
	if !exists {
		return nil, fmt.Errorf("no data for user %d", userID)
	}

	flowData, ok := data.(*flows.SubmitAdFlowData)
	if !ok {
		return nil, fmt.Errorf("invalid data type for user %d", userID)
	}

	return flowData, nil
}
