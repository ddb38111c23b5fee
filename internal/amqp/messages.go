package amqp

import (
	"encoding/json"
	"time"
)

// Message type discriminators, carried in the AMQP Type property.
const (
	TypeContributionSync   = "contribution.sync"
	TypeContributionDelete = "contribution.delete"
)

// ContributionSyncMessage asks the worker to mirror one contribution to the
// sheet. It carries only id and version; the worker fetches the row itself.
type ContributionSyncMessage struct {
	ID        int64     `json:"id"`
	Version   int64     `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func NewContributionSyncMessage(id, version int64) *ContributionSyncMessage {
	return &ContributionSyncMessage{
		ID:        id,
		Version:   version,
		Timestamp: time.Now(),
	}
}

func (m *ContributionSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ContributionSyncMessageFromJSON(data []byte) (*ContributionSyncMessage, error) {
	var msg ContributionSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ContributionDeleteMessage asks the worker to remove a contribution's sheet
// row. The database row is already gone when this is published.
type ContributionDeleteMessage struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewContributionDeleteMessage(id int64) *ContributionDeleteMessage {
	return &ContributionDeleteMessage{
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *ContributionDeleteMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ContributionDeleteMessageFromJSON(data []byte) (*ContributionDeleteMessage, error) {
	var msg ContributionDeleteMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
