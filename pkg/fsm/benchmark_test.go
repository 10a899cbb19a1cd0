package fsm_test

import (
	"fmt"
	"testing"

	"github.com/dmitrymomot/minifsm/pkg/fsm"
)

func BenchmarkMachine_Move(b *testing.B) {
	m := fsm.MustNew(Idle,
		fsm.WithTransition("start", []fsm.State{Idle}, Running),
		fsm.WithTransition("stop", []fsm.State{Running}, Idle),
	)

	b.ResetTimer()

	for b.Loop() {
		_ = m.Move("start")
		_ = m.Move("stop")
	}
}

func BenchmarkMachine_MoveWithListeners(b *testing.B) {
	m := fsm.MustNew(Idle,
		fsm.WithTransition("start", []fsm.State{Idle}, Running),
		fsm.WithTransition("stop", []fsm.State{Running}, Idle),
	)
	for range 5 {
		m.OnFunc(Running, func(*fsm.Machine, fsm.State, fsm.State) {})
	}

	b.ResetTimer()

	for b.Loop() {
		_ = m.Move("start")
		_ = m.Move("stop")
	}
}

func BenchmarkMachine_Can(b *testing.B) {
	sizes := []int{1, 10, 100}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("Sources_%d", size), func(b *testing.B) {
			sources := make([]fsm.State, size)
			for i := range sources {
				sources[i] = fsm.State(fmt.Sprintf("state_%d", i))
			}
			m := fsm.MustNew(sources[size-1], fsm.WithTransition("go", sources, Running))

			b.ResetTimer()

			for b.Loop() {
				_ = m.Can("go")
			}
		})
	}
}

func BenchmarkMachine_Set(b *testing.B) {
	for b.Loop() {
		m := fsm.MustNew(Idle)
		for i := range 10 {
			_ = m.Set(fmt.Sprintf("t%d", i), []fsm.State{Idle}, Running)
		}
	}
}
