package service

import (
	"context"
	"testing"

	"github.com/sakif/omen/internal/model"
	"github.com/sakif/omen/internal/storage"
)

func newTestSettingsService(t *testing.T) (*SettingsService, *mockKVRepo) {
	t.Helper()
	kv := newMockKV()
	return NewSettingsService(storage.NewCodec(kv, testLogger()), testLogger()), kv
}

func TestSettingsLoad(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   model.AppSettings
	}{
		{name: "absent", stored: nil, want: model.AppSettings{ShowCultural: true, ShowPsychological: true}},
		{name: "both false", stored: strPtr(`{"showCultural":false,"showPsychological":false}`), want: model.AppSettings{}},
		{name: "only cultural stored", stored: strPtr(`{"showCultural":false}`), want: model.AppSettings{ShowCultural: false, ShowPsychological: true}},
		{name: "empty object", stored: strPtr(`{}`), want: model.AppSettings{ShowCultural: true, ShowPsychological: true}},
		{name: "not JSON", stored: strPtr(`yes please`), want: model.AppSettings{ShowCultural: true, ShowPsychological: true}},
		{name: "non-boolean flag keeps the other", stored: strPtr(`{"showCultural":"no","showPsychological":false}`), want: model.AppSettings{ShowCultural: true, ShowPsychological: false}},
		{name: "null flag", stored: strPtr(`{"showCultural":false,"showPsychological":null}`), want: model.AppSettings{ShowCultural: false, ShowPsychological: true}},
		{name: "array", stored: strPtr(`[true,false]`), want: model.AppSettings{ShowCultural: true, ShowPsychological: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, kv := newTestSettingsService(t)
			if tt.stored != nil {
				kv.data[storage.KeySettings] = *tt.stored
			}

			got := svc.Load(context.Background())
			if got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
			if svc.Settings() != tt.want {
				t.Errorf("Settings() = %+v, want %+v", svc.Settings(), tt.want)
			}
		})
	}
}

func TestSettingsSet_WritesGlobalKey(t *testing.T) {
	svc, kv := newTestSettingsService(t)
	ctx := context.Background()

	want := model.AppSettings{ShowCultural: false, ShowPsychological: true}
	if err := svc.Set(ctx, want); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if kv.sets != 1 {
		t.Errorf("writes = %d, want 1", kv.sets)
	}
	if got := kv.data["omenSettings"]; got != `{"showCultural":false,"showPsychological":true}` {
		t.Errorf("stored = %s", got)
	}

	// A fresh service sees the persisted value.
	other := NewSettingsService(storage.NewCodec(kv, testLogger()), testLogger())
	if got := other.Load(ctx); got != want {
		t.Errorf("Load() after Set() = %+v, want %+v", got, want)
	}
}

func strPtr(s string) *string { return &s }
