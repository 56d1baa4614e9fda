package get_available_slots

// Request модель запроса доступных слотов
type Request struct {
	WorkerID string // ID работника
	Date     string // Дата "2025-10-15"
}

// Response модель ответа со списком свободных слотов
type Response struct {
	WorkerID string   `json:"workerId"`
	Date     string   `json:"date"`
	Blocked  bool     `json:"blocked"`        // Дата заблокирована работником
	Slots    []string `json:"availableSlots"` // Свободные слоты в порядке генерации
}
