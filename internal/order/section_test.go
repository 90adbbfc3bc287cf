package order

import "testing"

func TestSplitSectionsNoDivider(t *testing.T) {
	sections := SplitSections("小明：雞腿飯$80\n小華：排骨飯$70")

	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Category != CategoryAttendee {
		t.Errorf("expected attendee category, got %s", sections[0].Category)
	}
}

func TestSplitSectionsOneDivider(t *testing.T) {
	sections := SplitSections("小明：雞腿飯$80\n---\n小華：排骨飯$70")

	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Category != CategoryAttendee {
		t.Errorf("first section should be attendee, got %s", sections[0].Category)
	}
	if sections[1].Category != CategoryNonAttendee {
		t.Errorf("second section should be non-attendee, got %s", sections[1].Category)
	}
}

func TestSplitSectionsEmDash(t *testing.T) {
	if !HasDivider("a\n———\nb") {
		t.Errorf("expected em-dash run to count as divider")
	}
	if HasDivider("a\n--\nb") {
		t.Errorf("two dashes should not count as divider")
	}
}

func TestSplitSectionsExtraSegmentsIgnored(t *testing.T) {
	sections := SplitSections("小明：雞腿飯$80\n---\n小華：排骨飯$70\n---\n小王：麵$50")

	if len(sections) != 2 {
		t.Fatalf("expected extra segments dropped, got %d sections", len(sections))
	}
}
