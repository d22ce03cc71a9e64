package po

import (
	"time"

	"solid-example/domain/database"
)

type RecordPO struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Database  string    `gorm:"size:100;not null;index"`
	Payload   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (RecordPO) TableName() string {
	return "records"
}

func FromRecord(r *database.Record) *RecordPO {
	return &RecordPO{
		ID:        r.ID,
		Database:  r.Database,
		Payload:   r.Payload,
		CreatedAt: r.CreatedAt,
	}
}

func (p *RecordPO) ToDomain() *database.Record {
	return &database.Record{
		ID:        p.ID,
		Database:  p.Database,
		Payload:   p.Payload,
		CreatedAt: p.CreatedAt,
	}
}
