package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringList stores an ordered list of strings as a JSON text column
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// Submission represents one processed classification request
type Submission struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	TokenCount        int        `json:"token_count" gorm:"not null"`
	OddNumbers        StringList `json:"odd_numbers" gorm:"type:text"`
	EvenNumbers       StringList `json:"even_numbers" gorm:"type:text"`
	Alphabets         StringList `json:"alphabets" gorm:"type:text"`
	SpecialCharacters StringList `json:"special_characters" gorm:"type:text"`
	Sum               string     `json:"sum" gorm:"type:varchar(40);not null"`
	ConcatString      string     `json:"concat_string" gorm:"type:text"`
	CreatedAt         time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for GORM
func (Submission) TableName() string {
	return "submissions"
}

// NewSubmission creates a new Submission from a classification outcome
func NewSubmission(tokenCount int, odd, even, alphabets, special []string, sum, concat string) *Submission {
	return &Submission{
		ID:                uuid.New(),
		TokenCount:        tokenCount,
		OddNumbers:        odd,
		EvenNumbers:       even,
		Alphabets:         alphabets,
		SpecialCharacters: special,
		Sum:               sum,
		ConcatString:      concat,
	}
}
