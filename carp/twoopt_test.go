package carp

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/carp-ls/carp/routes"
)

func TestTwoOpt(t *testing.T) {
	testCases := []struct {
		desc      string
		route     []int
		maxMoves  int
		want      []int
		wantCost  int
		wantMoves int
	}{
		{
			// 0 -> 1 -> 3 -> 2 -> 0 costs 6, 0 -> 1 -> 2 -> 3 -> 0 costs 4.
			desc:      "reverse tail",
			route:     []int{1, 2, 3},
			want:      []int{1, 3, 2},
			wantCost:  4,
			wantMoves: 1,
		},
		{
			desc:      "already optimal",
			route:     []int{1, 3, 2},
			want:      []int{1, 3, 2},
			wantCost:  4,
			wantMoves: 0,
		},
		{
			// The first service is never moved.
			desc:      "first service is kept",
			route:     []int{3, 1, 2},
			want:      []int{3, 1, 2},
			wantCost:  6,
			wantMoves: 0,
		},
		{
			desc:      "single service",
			route:     []int{2},
			want:      []int{2},
			wantCost:  2,
			wantMoves: 0,
		},
		{
			desc:      "negative budget means no limit",
			route:     []int{1, 2, 3},
			maxMoves:  -1,
			want:      []int{1, 3, 2},
			wantCost:  4,
			wantMoves: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			p := mustProblem(t, ringInstance(t, [3]int{1, 1, 1}, 10))
			seq := routes.New(tc.route...)

			got, gotCost, gotMoves := TwoOpt(context.Background(), p, seq, tc.maxMoves)

			if diff := cmp.Diff(tc.want, got.IDs()); diff != "" {
				t.Errorf("TwoOpt(): mismatch (-want +got):\n%s", diff)
			}
			if gotCost != tc.wantCost {
				t.Errorf("TwoOpt(): want cost %d, got %d", tc.wantCost, gotCost)
			}
			if gotMoves != tc.wantMoves {
				t.Errorf("TwoOpt(): want %d moves, got %d", tc.wantMoves, gotMoves)
			}
			if diff := cmp.Diff(tc.route, seq.IDs()); diff != "" {
				t.Errorf("TwoOpt(): input modified (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTwoOpt_cancelled(t *testing.T) {
	p := mustProblem(t, ringInstance(t, [3]int{1, 1, 1}, 10))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, gotCost, gotMoves := TwoOpt(ctx, p, routes.New(1, 2, 3), 0)

	if diff := cmp.Diff([]int{1, 2, 3}, got.IDs()); diff != "" {
		t.Errorf("TwoOpt(): mismatch (-want +got):\n%s", diff)
	}
	if gotCost != 6 || gotMoves != 0 {
		t.Errorf("TwoOpt(): want (6, 0), got (%d, %d)", gotCost, gotMoves)
	}
}

func TestTwoOpt_neverIncreasesCost(t *testing.T) {
	p := mustProblem(t, ringInstance(t, [3]int{1, 1, 1}, 10))
	perms := [][]int{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3},
		{2, 3, 1}, {3, 1, 2}, {3, 2, 1},
	}

	for _, perm := range perms {
		before := p.Cost(perm)
		_, after, _ := TwoOpt(context.Background(), p, routes.New(perm...), 0)
		if after > before {
			t.Errorf("TwoOpt(%v): cost increased from %d to %d", perm, before, after)
		}
	}
}
