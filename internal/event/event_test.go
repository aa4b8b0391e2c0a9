package event

import "testing"

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatcherRoutesByType(t *testing.T) {
	d := NewDispatcher()
	hits := &recorder{}
	kills := &recorder{}
	d.Subscribe(EnemyHit, hits)
	d.Subscribe(EnemyDestroyed, kills)

	d.Dispatch(Event{Type: EnemyHit, Data: EnemyHitData{Damage: 2}})
	d.Dispatch(Event{Type: EnemyDestroyed})
	d.Dispatch(Event{Type: ProjectileFired})

	if len(hits.got) != 1 || len(kills.got) != 1 {
		t.Fatalf("hits %d kills %d, want 1 and 1", len(hits.got), len(kills.got))
	}
	if hits.got[0].Data.(EnemyHitData).Damage != 2 {
		t.Errorf("payload = %+v", hits.got[0].Data)
	}

	d.Unsubscribe(EnemyHit, hits)
	d.Dispatch(Event{Type: EnemyHit})
	if len(hits.got) != 1 {
		t.Error("unsubscribed listener still called")
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var got []EventType
	d.Subscribe(EnemySpawned, ListenerFunc(func(e Event) { got = append(got, e.Type) }))
	d.Dispatch(Event{Type: EnemySpawned})
	if len(got) != 1 || got[0] != EnemySpawned {
		t.Errorf("got %v", got)
	}
}
