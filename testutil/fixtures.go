package testutil

import (
	"fmt"
	"time"

	"github.com/wandersync/wandersync-cli/internal"
)

// SampleRecords builds an alternating query/response log with n entries.
// Entry i carries a query when i is even and a response when i is odd;
// timestamps advance one minute per entry.
func SampleRecords(n int) []internal.Record {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	records := make([]internal.Record, 0, n)
	for i := 0; i < n; i++ {
		rec := internal.Record{
			Timestamp: base.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
			ChatID:    "chat-1",
		}
		if i%2 == 0 {
			rec.Query = fmt.Sprintf("query %d", i)
		} else {
			rec.Response = fmt.Sprintf("response %d", i)
		}
		records = append(records, rec)
	}
	return records
}

// SampleTurns builds n paired turns with ascending query timestamps.
func SampleTurns(n int) []internal.Turn {
	result := internal.NewPairer().Pair(SampleRecords(n * 2))
	return result.Turns
}

// SampleMessage builds one text message.
func SampleMessage(id int, sender, content string) internal.Message {
	return internal.Message{
		ID:        id,
		ChatID:    "chat-1",
		Content:   content,
		Sender:    sender,
		Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}
