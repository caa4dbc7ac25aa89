package subtitle

import (
	"strconv"
	"strings"
)

// Parse scans SRT-formatted text into an ordered sequence of entries.
//
// The parser is deliberately lenient: lines that do not start a valid
// cue are skipped, and a cue whose timing line is missing the "-->"
// separator is dropped wholesale while scanning resynchronizes on the
// following lines. Parse never fails; malformed input simply yields
// fewer entries. A result with zero entries is the caller's signal
// that the file was unreadable.
func Parse(text string) []Entry {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r", "")
	lines := strings.Split(text, "\n")

	var entries []Entry
	i := 0

	for i < len(lines) {
		index, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			i++
			continue
		}

		if i+1 >= len(lines) || !strings.Contains(lines[i+1], " --> ") {
			// Malformed cue: drop it and resynchronize.
			i += 2
			continue
		}

		parts := strings.SplitN(lines[i+1], " --> ", 2)
		start, okStart := parseTimestamp(strings.TrimSpace(parts[0]))
		end, okEnd := parseTimestamp(strings.TrimSpace(parts[1]))
		if !okStart || !okEnd {
			i += 2
			continue
		}

		i += 2

		var textLines []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			textLines = append(textLines, lines[i])
			i++
		}

		// skip the blank separator line
		i++

		entries = append(entries, Entry{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(textLines, "\n"),
		})
	}

	return entries
}

// parseTimestamp converts an HH:MM:SS,mmm timestamp to seconds.
//
// Values outside conventional ranges (minutes > 59, etc.) are accepted
// as-is; the input is trusted numerically.
func parseTimestamp(s string) (float64, bool) {
	clock := strings.SplitN(s, ",", 2)
	if len(clock) != 2 {
		return 0, false
	}

	hms := strings.SplitN(clock[0], ":", 3)
	if len(hms) != 3 {
		return 0, false
	}

	h, err := strconv.Atoi(hms[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(hms[1])
	if err != nil {
		return 0, false
	}
	sec, err := strconv.Atoi(hms[2])
	if err != nil {
		return 0, false
	}
	ms, err := strconv.Atoi(clock[1])
	if err != nil {
		return 0, false
	}

	return float64(h)*3600 + float64(m)*60 + float64(sec) + float64(ms)/1000, true
}
