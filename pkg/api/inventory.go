package api

import "time"

// HeaderOrigin carries the writer's origin token on state writes
const HeaderOrigin = "X-Origin"

// Change operations carried by ChangeEvent.Op
const (
	OpInsert = "INSERT"
	OpUpdate = "UPDATE"
	OpDelete = "DELETE"
)

// Item представляет товар в документе состояния
type Item struct {
	Name      string  `json:"name"`
	Threshold float64 `json:"threshold"`
}

// InventoryData представляет тело документа inventory_state
type InventoryData struct {
	Areas      []string `json:"areas"`
	Items      []Item   `json:"items"`
	Quantities [][]int  `json:"quantities"`
}

// StateDocument представляет строку inventory_state
type StateDocument struct {
	UpdatedAt time.Time     `json:"updated_at"`
	ID        string        `json:"id"`
	Data      InventoryData `json:"data"`
}

// ChangeEvent is pushed to subscribers after every write to a state document
type ChangeEvent struct {
	At         time.Time `json:"at"`
	DocumentID string    `json:"id"`
	Op         string    `json:"op"`
	Origin     string    `json:"origin,omitempty"`
}

// CreateSnapshotRequest представляет запрос на создание полного снимка
type CreateSnapshotRequest struct {
	Title string        `json:"title,omitempty"`
	Data  InventoryData `json:"data"`
}

// Snapshot представляет строку inventory_snapshots
type Snapshot struct {
	CreatedAt time.Time     `json:"created_at"`
	Title     string        `json:"title,omitempty"`
	Data      InventoryData `json:"data"`
	ID        int64         `json:"id"`
}

// AreaItem представляет количество товара в записи по зоне
type AreaItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// CreateAreaInventoryRequest представляет запрос на создание записи инвентаризации зоны
type CreateAreaInventoryRequest struct {
	AreaName      string     `json:"area_name"`
	InventoryDate string     `json:"inventory_date"` // YYYY-MM-DD
	Items         []AreaItem `json:"items"`
	AreaIndex     int        `json:"area_index"`
}

// AreaInventory представляет строку area_inventories
type AreaInventory struct {
	CreatedAt     time.Time  `json:"created_at"`
	AreaName      string     `json:"area_name"`
	InventoryDate string     `json:"inventory_date"`
	Items         []AreaItem `json:"items"`
	ID            int64      `json:"id"`
	AreaIndex     int        `json:"area_index"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
