package order

import "testing"

func TestParseLineValid(t *testing.T) {
	line, ok := ParseLine("小明：雞腿飯$80")
	if !ok {
		t.Fatalf("expected line to match")
	}
	if line.Name != "小明" {
		t.Errorf("expected name 小明, got %q", line.Name)
	}
	if line.Item != "雞腿飯" {
		t.Errorf("expected item 雞腿飯, got %q", line.Item)
	}
	if line.Price != 80 {
		t.Errorf("expected price 80, got %d", line.Price)
	}
}

func TestParseLineWithoutCurrencyMarker(t *testing.T) {
	line, ok := ParseLine("小華：排骨飯 70")
	if !ok {
		t.Fatalf("expected line to match")
	}
	if line.Item != "排骨飯" {
		t.Errorf("expected item 排骨飯, got %q", line.Item)
	}
	if line.Price != 70 {
		t.Errorf("expected price 70, got %d", line.Price)
	}
}

func TestParseLineTrimsWhitespace(t *testing.T) {
	line, ok := ParseLine("  小明 ： 雞腿飯 $80")
	if !ok {
		t.Fatalf("expected line to match")
	}
	if line.Name != "小明" {
		t.Errorf("expected trimmed name, got %q", line.Name)
	}
	if line.Item != "雞腿飯" {
		t.Errorf("expected trimmed item, got %q", line.Item)
	}
}

func TestParseLineMalformed(t *testing.T) {
	malformed := []string{
		"隨便打一些字",
		"小明：便當",
		"小明 雞腿飯 $80",
		"",
	}

	for _, input := range malformed {
		if _, ok := ParseLine(input); ok {
			t.Errorf("expected %q to be skipped", input)
		}
	}
}

func TestTokenizeSkipsMalformedLines(t *testing.T) {
	text := "小明：雞腿飯$80\n隨便打一些字\n小華：排骨飯$70"

	var lines []Line
	for line := range Tokenize(text) {
		lines = append(lines, line)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 matched lines, got %d", len(lines))
	}
	if lines[0].Name != "小明" || lines[1].Name != "小華" {
		t.Errorf("unexpected order of lines: %+v", lines)
	}
}

func TestTokenizeStopsEarly(t *testing.T) {
	text := "小明：雞腿飯$80\n小華：排骨飯$70"

	count := 0
	for range Tokenize(text) {
		count++
		break
	}

	if count != 1 {
		t.Fatalf("expected loop to stop after one line, saw %d", count)
	}
}
