package usecase

import (
	"context"
	"log"

	"grenzgaenger_service/internal/usecase/interfaces"
)

const (
	maxDiagnosticCollections = 10
	maxDiagnosticErrorLen    = 50
)

// Diagnostics is the store report served on GET /test.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseKind     string   `json:"database_kind"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseNameEnv  string   `json:"database_name_env"`
	Collections      []string `json:"collections"`
}

// StoreSettings tells the diagnostics which store settings were provided.
type StoreSettings struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// IStatusUseCase reports service and store health.
type IStatusUseCase interface {
	Diagnostics(ctx context.Context) Diagnostics
}

type StatusUseCase struct {
	probe    interfaces.IStoreStatusProbe
	settings StoreSettings
}

var _ IStatusUseCase = (*StatusUseCase)(nil)

func NewStatusUseCase(probe interfaces.IStoreStatusProbe, settings StoreSettings) *StatusUseCase {
	return &StatusUseCase{probe: probe, settings: settings}
}

// Diagnostics never fails: store problems are reported in the body.
func (u *StatusUseCase) Diagnostics(ctx context.Context) Diagnostics {
	d := Diagnostics{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		DatabaseURL:      setOrNot(u.settings.DatabaseURLSet),
		DatabaseNameEnv:  setOrNot(u.settings.DatabaseNameSet),
		Collections:      []string{},
	}
	if u.probe == nil {
		return d
	}

	st, err := u.probe.Status(ctx)
	d.DatabaseKind = st.Kind
	d.DatabaseName = st.Name
	if err != nil {
		log.Printf("[status][usecase] store probe failed kind=%s err=%v", st.Kind, err)
		d.Database = "error: " + truncate(err.Error(), maxDiagnosticErrorLen)
		return d
	}
	if !st.Connected {
		d.Database = "available but not initialized"
		return d
	}

	d.Database = "connected & working"
	d.ConnectionStatus = "connected"
	if len(st.Collections) > maxDiagnosticCollections {
		d.Collections = st.Collections[:maxDiagnosticCollections]
	} else if st.Collections != nil {
		d.Collections = st.Collections
	}
	return d
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func setOrNot(ok bool) string {
	if ok {
		return "set"
	}
	return "not set"
}
