package handlers_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
)

func TestWriteLeadsCSV(t *testing.T) {
	sentAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	leads := []entity.Lead{
		{
			Name:         "Jane",
			Email:        "jane@x.com",
			NicheTag:     "dental",
			Used:         true,
			Replied:      true,
			TemplateUsed: "dental",
			SentAt:       &sentAt,
			CreatedAt:    createdAt,
		},
		{
			Name:      "Bob",
			Email:     "bob@x.com",
			NicheTag:  "gym",
			Failed:    true,
			FailCount: 2,
			CreatedAt: createdAt,
		},
	}

	var buf bytes.Buffer
	err := handlers.WriteLeadsCSV(&buf, leads)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "name,email,niche_tag,used,replied,template_used,sent_at,failed,fail_count,created_at", lines[0])
	assert.Equal(t, "Jane,jane@x.com,dental,true,true,dental,2026-03-10T14:30:00Z,false,0,2026-03-01T09:00:00Z", lines[1])
	assert.Equal(t, "Bob,bob@x.com,gym,false,false,,,true,2,2026-03-01T09:00:00Z", lines[2])
}

func TestWriteLeadsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := handlers.WriteLeadsCSV(&buf, nil)

	assert.NoError(t, err)
	// Só o cabeçalho
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(buf.String()), "\n")+1)
}
