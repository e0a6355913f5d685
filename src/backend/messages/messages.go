package messages

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	superbox "superbox/src/middleware/modules/superbox"

	"github.com/google/uuid"
)

var csvHeaders = []string{"ID", "Number", "Date", "Type", "Content (Encoded)"}

// ExportCSV writes messages to a new file in dir and returns its path.
func ExportCSV(dir string, tags superbox.SMSType, messages []superbox.Message) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create exports directory: %w", err)
	}

	name := fmt.Sprintf("sms_%s_%s_%s.csv", tags.Name(), time.Now().Format("20060102-150405"), uuid.New().String()[:8])
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeaders); err != nil {
		return "", err
	}

	for _, message := range messages {
		row, err := Row(message)
		if err != nil {
			return "", err
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}

func Row(message superbox.Message) ([]string, error) {
	summary, err := message.Summary()
	if err != nil {
		return nil, err
	}

	return []string{summary.ID, summary.Number, summary.Date, summary.TypeName(), summary.Content}, nil
}

// Label is the one-line form used in menus.
func Label(message superbox.Message) string {
	summary, err := message.Summary()
	if err != nil {
		return message.ID()
	}

	return fmt.Sprintf("#%s | %s | %s | %s", summary.ID, summary.Number, summary.Date, summary.TypeName())
}
