package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/creditosur/lending-engine/internal/application/dto"
	"github.com/creditosur/lending-engine/internal/domain/model"
	"github.com/creditosur/lending-engine/internal/domain/port"
)

// PreviewScheduleUseCase produces live schedule previews for the loan form.
// The form recomputes on every change, so the calculation degrades to an
// empty result for incomplete terms instead of failing.
//
// Results are memoized in an optional cache keyed by a fingerprint of the
// terms. Identical terms always produce identical output, so a cached entry
// never goes stale.
type PreviewScheduleUseCase struct {
	cache  port.PreviewCache
	logger *slog.Logger
}

// NewPreviewScheduleUseCase wires dependencies. The cache may be nil, in
// which case every preview is computed directly.
func NewPreviewScheduleUseCase(cache port.PreviewCache, logger *slog.Logger) *PreviewScheduleUseCase {
	return &PreviewScheduleUseCase{cache: cache, logger: logger}
}

// Execute computes the schedule and summary for the given terms.
func (uc *PreviewScheduleUseCase) Execute(
	ctx context.Context,
	req dto.LoanTermsRequest,
) (dto.SchedulePreviewResponse, error) {
	terms, err := termsFromRequest(req)
	if err != nil {
		return dto.SchedulePreviewResponse{}, err
	}

	key := previewKey(terms)
	if uc.cache != nil {
		if raw, ok := uc.cache.Get(ctx, key); ok {
			var cached dto.SchedulePreviewResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			uc.logger.WarnContext(ctx, "discarding undecodable preview cache entry", "key", key)
		}
	}

	schedule, summary, err := model.ComputeSchedule(terms)
	if err != nil {
		return dto.SchedulePreviewResponse{}, fmt.Errorf("compute preview: %w", err)
	}

	resp := dto.SchedulePreviewResponse{
		Schedule: scheduleToResponse(schedule),
		Summary:  summaryToResponse(summary),
	}

	if uc.cache != nil {
		raw, err := json.Marshal(resp)
		if err == nil {
			if err := uc.cache.Set(ctx, key, raw); err != nil {
				uc.logger.WarnContext(ctx, "failed to cache preview", "key", key, "error", err)
			}
		}
	}

	return resp, nil
}

// previewKey fingerprints the terms that influence the calculation.
func previewKey(terms model.LoanTerms) string {
	canonical := fmt.Sprintf("%s|%s|%s|%s|%s|%d|%s|%s",
		terms.PrincipalRequested, terms.UpfrontPayment, terms.CommissionRate,
		terms.AdministrativeFee, terms.NominalMonthlyRate, terms.TermMonths,
		terms.Frequency, terms.StartDate.UTC().Format("2006-01-02"),
	)
	sum := sha256.Sum256([]byte(canonical))
	return "preview:" + hex.EncodeToString(sum[:])
}
