package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"grenzgaenger_service/internal/domain/entities"
	mock_interfaces "grenzgaenger_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestStatusUseCase_Diagnostics(t *testing.T) {
	t.Run("no probe", func(t *testing.T) {
		d := NewStatusUseCase(nil, StoreSettings{}).Diagnostics(context.Background())
		if d.Backend != "running" || d.ConnectionStatus != "not connected" || d.DatabaseURL != "not set" {
			t.Fatalf("unexpected diagnostics: %+v", d)
		}
	})

	t.Run("probe error is truncated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		probe := mock_interfaces.NewMockIStoreStatusProbe(ctrl)
		probe.EXPECT().Status(gomock.Any()).Return(entities.StoreStatus{Kind: "mongodb"}, errors.New(strings.Repeat("x", 80)))

		d := NewStatusUseCase(probe, StoreSettings{DatabaseURLSet: true}).Diagnostics(context.Background())
		if d.Database != "error: "+strings.Repeat("x", 50) {
			t.Fatalf("unexpected database field: %q", d.Database)
		}
		if d.DatabaseKind != "mongodb" || d.DatabaseURL != "set" {
			t.Fatalf("unexpected diagnostics: %+v", d)
		}
	})

	t.Run("not connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		probe := mock_interfaces.NewMockIStoreStatusProbe(ctrl)
		probe.EXPECT().Status(gomock.Any()).Return(entities.StoreStatus{Kind: "dynamodb"}, nil)

		d := NewStatusUseCase(probe, StoreSettings{}).Diagnostics(context.Background())
		if d.Database != "available but not initialized" || d.ConnectionStatus != "not connected" {
			t.Fatalf("unexpected diagnostics: %+v", d)
		}
	})

	t.Run("connected lists at most ten collections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		probe := mock_interfaces.NewMockIStoreStatusProbe(ctrl)
		names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
		probe.EXPECT().Status(gomock.Any()).Return(entities.StoreStatus{Kind: "mongodb", Name: "grenzgaenger", Connected: true, Collections: names}, nil)

		d := NewStatusUseCase(probe, StoreSettings{DatabaseURLSet: true, DatabaseNameSet: true}).Diagnostics(context.Background())
		if d.ConnectionStatus != "connected" || len(d.Collections) != 10 || d.DatabaseName != "grenzgaenger" {
			t.Fatalf("unexpected diagnostics: %+v", d)
		}
	})
}
