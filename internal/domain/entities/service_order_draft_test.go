package entities

import (
	"testing"
	"time"
)

func TestDraftStatus_Transitions(t *testing.T) {
	allowed := map[DraftStatus][]DraftStatus{
		DraftStatusRascunho:            {DraftStatusAguardandoPagamento, DraftStatusCancelado},
		DraftStatusAguardandoPagamento: {DraftStatusEmPreenchimento, DraftStatusExpirado, DraftStatusCancelado},
		DraftStatusEmPreenchimento:     {DraftStatusEmAnalise, DraftStatusCancelado},
		DraftStatusEmAnalise:           {DraftStatusConcluido, DraftStatusCancelado},
	}

	for _, from := range AllDraftStatuses() {
		for _, to := range AllDraftStatuses() {
			want := false
			for _, ok := range allowed[from] {
				if ok == to {
					want = true
				}
			}
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s: expected %v, got %v", from, to, want, got)
			}
		}
	}
}

func TestDraftStatus_TerminalAndDeletable(t *testing.T) {
	for _, s := range []DraftStatus{DraftStatusConcluido, DraftStatusCancelado, DraftStatusExpirado} {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	if DraftStatusEmAnalise.IsTerminal() {
		t.Errorf("em_analise is not terminal")
	}
	if !DraftStatusRascunho.Deletable() || !DraftStatusCancelado.Deletable() || DraftStatusConcluido.Deletable() {
		t.Errorf("unexpected deletable set")
	}
	if _, ok := ParseDraftStatus(" EM_ANALISE "); !ok {
		t.Errorf("expected status to parse")
	}
	if _, ok := ParseDraftStatus("pago"); ok {
		t.Errorf("unknown status must not parse")
	}
}

func TestWizardData_MergeNeverErases(t *testing.T) {
	w := WizardData{}
	w1 := w.Merge("1", map[string]any{"client_id": "k1", "nome": "Ana"})
	w2 := w1.Merge("1", map[string]any{"nome": "Ana Souza"})
	w3 := w2.Merge("2", map[string]any{"placa": "ABC1D23"})

	if len(w) != 0 {
		t.Fatalf("merge must not mutate the receiver")
	}
	if w3["1"]["client_id"] != "k1" || w3["1"]["nome"] != "Ana Souza" || w3["2"]["placa"] != "ABC1D23" {
		t.Fatalf("unexpected merge result: %+v", w3)
	}
	if w1["1"]["nome"] != "Ana" {
		t.Fatalf("earlier snapshot was mutated: %+v", w1)
	}
}

func TestWizardData_CloneIsDeep(t *testing.T) {
	w := WizardData{"intake": {"docs": []any{map[string]any{"name": "cnh.pdf"}}}}
	cp := w.Clone()
	cp["intake"]["docs"].([]any)[0].(map[string]any)["name"] = "other.pdf"

	if w["intake"]["docs"].([]any)[0].(map[string]any)["name"] != "cnh.pdf" {
		t.Fatalf("clone shares nested values: %+v", w)
	}
	if CloneFields(nil) != nil {
		t.Fatal("nil payload must stay nil")
	}
}

func TestWizardData_MissingFields(t *testing.T) {
	w := WizardData{"2": {"placa": "  ", "numero_auto": 12345.0}}
	missing := w.MissingFields("2", RequiredStepFields[2])
	if len(missing) != 1 || missing[0] != "placa" {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
	if got := w.MissingFields("1", RequiredStepFields[1]); len(got) != 1 || got[0] != "client_id" {
		t.Fatalf("unexpected missing fields for absent step: %v", got)
	}
}

func TestResumeTargetFor(t *testing.T) {
	cases := []struct {
		status   DraftStatus
		view     ResumeView
		step     int
		terminal bool
	}{
		{DraftStatusRascunho, ResumeViewWizard, 2, false},
		{DraftStatusAguardandoPagamento, ResumeViewPayment, 0, false},
		{DraftStatusEmPreenchimento, ResumeViewIntake, 0, false},
		{DraftStatusEmAnalise, ResumeViewProcessing, 0, false},
		{DraftStatusConcluido, ResumeViewResult, 0, true},
		{DraftStatusCancelado, ResumeViewNone, 0, true},
		{DraftStatusExpirado, ResumeViewNone, 0, true},
	}
	for _, tc := range cases {
		got := ResumeTargetFor(ServiceOrderDraft{ID: "d1", Status: tc.status, CurrentStep: 2})
		if got.View != tc.view || got.Step != tc.step || got.Terminal != tc.terminal {
			t.Errorf("%s: unexpected target %+v", tc.status, got)
		}
	}
}

func TestServiceOrderDraft_PaymentExpired(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Minute)
	d := ServiceOrderDraft{Status: DraftStatusAguardandoPagamento, ExpiresAt: &past}
	if !d.PaymentExpired(now) {
		t.Fatalf("expected expired")
	}
	d.Status = DraftStatusEmPreenchimento
	if d.PaymentExpired(now) {
		t.Fatalf("paid drafts never expire")
	}
}
