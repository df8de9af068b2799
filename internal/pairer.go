package internal

import "time"

// PairResult is the outcome of pairing a raw history log. Orphaned holds
// responses whose preceding query entry was empty; the reference UI dropped
// these silently, here they stay observable so callers can at least log them.
type PairResult struct {
	Turns    []Turn
	Orphaned []Message
}

// Pairer converts the flat backend history log into conversation turns.
type Pairer struct{}

// NewPairer creates a new Pairer
func NewPairer() *Pairer {
	return &Pairer{}
}

// Pair walks the record log two entries at a time. Entry i is expected to
// hold a query and entry i+1 the response to it. A turn is emitted only when
// the query side is present; an odd-length log ends in a turn with a nil
// response. The input is never mutated and Pair never fails.
func (p *Pairer) Pair(records []Record) PairResult {
	var result PairResult

	for i := 0; i < len(records); i += 2 {
		var query *Message
		if records[i].Query != "" {
			query = recordToMessage(records[i], i+1, records[i].Query, SenderUser)
		}

		var response *Message
		if i+1 < len(records) && records[i+1].Response != "" {
			response = recordToMessage(records[i+1], i+2, records[i+1].Response, SenderBot)
		}

		if query == nil {
			if response != nil {
				LogDebug("orphaned response at log position %d", i+1)
				result.Orphaned = append(result.Orphaned, *response)
			}
			continue
		}

		result.Turns = append(result.Turns, Turn{Query: *query, Response: response})
	}

	return result
}

// ErrorTurn builds the single synthetic turn shown when the history fetch
// or parse fails upstream.
func ErrorTurn(content string) Turn {
	return Turn{
		Query: Message{
			ID:        1,
			Content:   content,
			Sender:    SenderBot,
			Timestamp: time.Now(),
		},
	}
}

func recordToMessage(rec Record, id int, content, sender string) *Message {
	return &Message{
		ID:        id,
		ChatID:    rec.ChatID,
		Content:   content,
		Sender:    sender,
		Timestamp: ParseTimestamp(rec.Timestamp),
		File:      rec.File,
		FileType:  rec.FileType,
	}
}
