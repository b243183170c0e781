package task

import (
	"encoding/json"
	"testing"

	"github.com/thenoetrevino/hito/internal/models"
)

func BenchmarkUpdateTaskRequest_Marshal(b *testing.B) {
	title := "Benchmark title"
	status := models.TaskInProgress
	req := UpdateTaskRequest{Title: &title, Status: &status, ClearAssignee: true}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := json.Marshal(req); err != nil {
			b.Fatal(err)
		}
	}
}
