package suggestion

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"suggestbot/model"
)

func TestFormatSID(t *testing.T) {
	cases := map[int64]string{
		1:    "001",
		7:    "007",
		42:   "042",
		999:  "999",
		1234: "1234",
	}
	for id, want := range cases {
		if got := FormatSID(id); got != want {
			t.Errorf("FormatSID(%d) = %q, want %q", id, got, want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[model.Status]string{
		model.StatusPending:  "🟡 Pending Review",
		model.StatusApproved: "✅ Approved",
		model.StatusDenied:   "❌ Denied",
	}
	for status, want := range cases {
		if got := StatusLabel(status); got != want {
			t.Errorf("StatusLabel(%s) = %q, want %q", status, got, want)
		}
	}
}

func TestTruncateContent(t *testing.T) {
	short := strings.Repeat("a", 120)
	if got := TruncateContent(short); got != short {
		t.Errorf("content at the limit was modified")
	}

	long := strings.Repeat("b", 121)
	got := TruncateContent(long)
	if got != strings.Repeat("b", 117)+"..." {
		t.Errorf("TruncateContent cut to %d runes, want 117 plus ellipsis", len([]rune(got))-3)
	}

	// Multi-byte content is cut on rune boundaries, not bytes.
	wide := strings.Repeat("建", 130)
	got = TruncateContent(wide)
	if []rune(got)[116] != '建' || !strings.HasSuffix(got, "...") {
		t.Errorf("multi-byte truncation broke a rune: %q", got[:12])
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{7, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
	}
	for _, c := range cases {
		if got := PageCount(c.total, c.pageSize); got != c.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", c.total, c.pageSize, got, c.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	cases := []struct {
		page, total, pageSize, want int
	}{
		{-1, 7, 5, 0},
		{0, 7, 5, 0},
		{1, 7, 5, 1},
		{2, 7, 5, 1},
		{99, 7, 5, 1},
		{3, 0, 5, 0},
	}
	for _, c := range cases {
		if got := ClampPage(c.page, c.total, c.pageSize); got != c.want {
			t.Errorf("ClampPage(%d, %d, %d) = %d, want %d", c.page, c.total, c.pageSize, got, c.want)
		}
	}
}

func makeRows(n int) []*model.Suggestion {
	rows := make([]*model.Suggestion, n)
	for i := range rows {
		rows[i] = &model.Suggestion{
			ID:        int64(n - i),
			AuthorTag: "user#1",
			Content:   fmt.Sprintf("idea %d", n-i),
			Status:    model.StatusPending,
		}
	}
	return rows
}

func TestBuildListEmbedFirstPage(t *testing.T) {
	rows := makeRows(7)
	embed := BuildListEmbed(rows, 0, 5, "pending", 0x7c3aed)

	if len(embed.Fields) != 5 {
		t.Errorf("page 0 shows %d rows, want 5", len(embed.Fields))
	}
	if want := "Page 1/2 • Showing 5 of 7"; embed.Footer.Text != want {
		t.Errorf("footer = %q, want %q", embed.Footer.Text, want)
	}
	if embed.Title != "Suggestions — Pending" {
		t.Errorf("title = %q", embed.Title)
	}
	if !strings.HasPrefix(embed.Fields[0].Name, "#007") {
		t.Errorf("first row = %q, want most recent id first", embed.Fields[0].Name)
	}
}

func TestBuildListEmbedLastPage(t *testing.T) {
	rows := makeRows(7)
	embed := BuildListEmbed(rows, 1, 5, "all", 0x7c3aed)

	if len(embed.Fields) != 2 {
		t.Errorf("page 1 shows %d rows, want 2", len(embed.Fields))
	}
	if want := "Page 2/2 • Showing 2 of 7"; embed.Footer.Text != want {
		t.Errorf("footer = %q, want %q", embed.Footer.Text, want)
	}
}

func TestBuildListEmbedEmpty(t *testing.T) {
	embed := BuildListEmbed(nil, 0, 5, "all", 0x7c3aed)
	if embed.Description != "No suggestions to show on this page." {
		t.Errorf("empty page description = %q", embed.Description)
	}
	if want := "Page 1/1 • Showing 0 of 0"; embed.Footer.Text != want {
		t.Errorf("footer = %q, want %q", embed.Footer.Text, want)
	}
}

func TestBuildListEmbedIdempotent(t *testing.T) {
	rows := makeRows(7)
	a := BuildListEmbed(rows, 0, 5, "all", 0x7c3aed)
	b := BuildListEmbed(rows, 0, 5, "all", 0x7c3aed)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different embeds")
	}
}

func TestBuildPagerRowDisabledStates(t *testing.T) {
	cases := []struct {
		name                     string
		page, totalRows          int
		wantPrevOff, wantNextOff bool
	}{
		{"first of two", 0, 7, true, false},
		{"last of two", 1, 7, false, true},
		{"single page", 0, 3, true, true},
		{"empty", 0, 0, true, true},
		{"middle", 1, 15, false, false},
	}
	for _, c := range cases {
		row := BuildPagerRow(c.page, c.totalRows, 5, "all")
		prev := row.Components[0].(discordgo.Button)
		next := row.Components[1].(discordgo.Button)
		if prev.Disabled != c.wantPrevOff {
			t.Errorf("%s: prev disabled = %v, want %v", c.name, prev.Disabled, c.wantPrevOff)
		}
		if next.Disabled != c.wantNextOff {
			t.Errorf("%s: next disabled = %v, want %v", c.name, next.Disabled, c.wantNextOff)
		}
	}
}

func TestBuildDecisionEmbedFields(t *testing.T) {
	sub := &model.Suggestion{ID: 7, AuthorTag: "user#1", Content: "Add dark mode", Status: model.StatusApproved}
	embed := BuildDecisionEmbed(sub, "admin#1", "sounds good", 0x7c3aed)

	if embed.Title != "💡 Suggestion #007" {
		t.Errorf("title = %q", embed.Title)
	}
	var byField, reasonField bool
	for _, f := range embed.Fields {
		switch f.Name {
		case "Approved by":
			byField = f.Value == "admin#1"
		case "Reason":
			reasonField = f.Value == "sounds good"
		}
	}
	if !byField || !reasonField {
		t.Errorf("decision fields missing: %+v", embed.Fields)
	}
}
