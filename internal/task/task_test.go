package task

import "testing"

func TestNextID(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{
			name:  "empty list starts at 1",
			tasks: nil,
			want:  1,
		},
		{
			name:  "dense ids",
			tasks: []Task{{ID: 1}, {ID: 2}, {ID: 3}},
			want:  4,
		},
		{
			name:  "gaps do not get refilled",
			tasks: []Task{{ID: 1}, {ID: 7}, {ID: 3}},
			want:  8,
		},
		{
			name:  "single task",
			tasks: []Task{{ID: 5}},
			want:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextID(tt.tasks)
			if got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}
