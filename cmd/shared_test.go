package cmd

import (
	"errors"
	"testing"

	"github.com/eslsoft/flash/internal/entity"
)

func TestPriorityFilter(t *testing.T) {
	cases := []struct {
		in      int
		want    int
		wantNil bool
		wantErr bool
	}{
		{in: 0, wantNil: true},
		{in: 1, want: 1},
		{in: 4, want: 4},
		{in: -1, wantErr: true},
		{in: 5, wantErr: true},
	}
	for _, c := range cases {
		got, err := priorityFilter(c.in)
		if c.wantErr {
			if !errors.Is(err, entity.ErrInvalidPriority) {
				t.Fatalf("%d: got %v want ErrInvalidPriority", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%d: unexpected error %v", c.in, err)
		}
		if c.wantNil {
			if got != nil {
				t.Fatalf("%d: got %v want nil", c.in, *got)
			}
			continue
		}
		if got == nil || *got != c.want {
			t.Fatalf("%d: got %v want %d", c.in, got, c.want)
		}
	}
}
