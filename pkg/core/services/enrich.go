package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nmoyal/shiftpoint/pkg/core/schedule"
	"github.com/nmoyal/shiftpoint/pkg/db"
)

// maxConcurrentLookups bounds the fan-out of independent datastore fetches
const maxConcurrentLookups = 10

// areaNamePlaceholder is shown when the cosmetic area lookup fails
const areaNamePlaceholder = "—"

// EnrichStore defines the datastore operations the display enricher needs
type EnrichStore interface {
	GetAllLaunchPoints(ctx context.Context) ([]db.LaunchPoint, error)
	GetAreaName(ctx context.Context, areaID string) (string, error)
	GetAllAmbulances(ctx context.Context) ([]db.Ambulance, error)
	GetUserByAccountID(ctx context.Context, accountID string) (*db.User, error)
	GetShiftSlotsByShift(ctx context.Context, shiftID string) ([]db.ShiftSlot, error)
}

// EnrichDay resolves the foreign keys of one day's scheduled shifts into
// display shifts. Launch points and ambulances are fetched once as lookup
// maps; drivers, slot lists and slot occupants are resolved as concurrent
// batches keyed by distinct id, so the number of round trips tracks the
// number of distinct references rather than the number of shifts.
// A shift whose launch point cannot be resolved fails the whole call.
func EnrichDay(ctx context.Context, store EnrichStore, logger *zap.Logger, shifts []schedule.ScheduledShift) ([]schedule.DisplayShift, error) {
	logger.Debug("Enriching scheduled shifts", zap.Int("count", len(shifts)))

	launchPoints, err := store.GetAllLaunchPoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch launch points: %w", err)
	}
	launchPointByID := make(map[string]db.LaunchPoint, len(launchPoints))
	for _, lp := range launchPoints {
		launchPointByID[lp.ID] = lp
	}

	ambulances, err := store.GetAllAmbulances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ambulances: %w", err)
	}
	ambulanceByID := make(map[string]db.Ambulance, len(ambulances))
	for _, a := range ambulances {
		ambulanceByID[a.ID] = a
	}

	driverIDs := distinctDriverIDs(shifts)
	driverByID, err := resolveUsers(ctx, store, driverIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve drivers: %w", err)
	}

	slotsByShiftID, err := resolveSlots(ctx, store, shifts)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve shift slots: %w", err)
	}

	occupantIDs := distinctOccupantIDs(slotsByShiftID)
	occupantByID, err := resolveUsers(ctx, store, occupantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve slot occupants: %w", err)
	}

	areaNames := resolveAreaNames(ctx, store, logger, launchPoints)

	display := make([]schedule.DisplayShift, 0, len(shifts))
	for _, shift := range shifts {
		launchPoint, ok := launchPointByID[shift.LaunchPointID]
		if !ok {
			return nil, &ReferentialError{Entity: "launch point", ID: shift.LaunchPointID}
		}

		d := schedule.DisplayShift{
			ScheduledShift: shift,
			LaunchPoint:    launchPoint,
			AreaName:       areaNames[launchPoint.AreaID],
			Slots:          make([]*schedule.DisplaySlot, shift.NumberOfSlots),
		}
		if shift.AmbulanceID != nil {
			if amb, ok := ambulanceByID[*shift.AmbulanceID]; ok {
				d.Ambulance = &amb
			}
		}
		if shift.DriverID != nil {
			d.Driver = driverByID[*shift.DriverID]
		}

		rawSlots := slotsByShiftID[shift.ShiftID()]
		for i := 0; i < shift.NumberOfSlots && i < len(rawSlots); i++ {
			slot := rawSlots[i]
			d.Slots[i] = &schedule.DisplaySlot{
				ID:      slot.ID,
				ShiftID: slot.ShiftID,
				User:    occupantByID[slot.UserID],
				Status:  slot.Status,
			}
		}

		display = append(display, d)
	}

	logger.Debug("Enrichment complete",
		zap.Int("shifts", len(display)),
		zap.Int("drivers_resolved", len(driverByID)),
		zap.Int("occupants_resolved", len(occupantByID)))

	return display, nil
}

func distinctDriverIDs(shifts []schedule.ScheduledShift) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, shift := range shifts {
		if shift.DriverID == nil || seen[*shift.DriverID] {
			continue
		}
		seen[*shift.DriverID] = true
		ids = append(ids, *shift.DriverID)
	}
	return ids
}

func distinctOccupantIDs(slotsByShiftID map[string][]db.ShiftSlot) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, slots := range slotsByShiftID {
		for _, slot := range slots {
			if slot.UserID == "" || seen[slot.UserID] {
				continue
			}
			seen[slot.UserID] = true
			ids = append(ids, slot.UserID)
		}
	}
	return ids
}

// resolveUsers fetches each distinct account id once, concurrently.
// An id that resolves to no user is simply absent from the result map:
// these references are nullable and render as unassigned.
func resolveUsers(ctx context.Context, store EnrichStore, accountIDs []string) (map[string]*db.User, error) {
	users := make(map[string]*db.User, len(accountIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for _, accountID := range accountIDs {
		accountID := accountID
		g.Go(func() error {
			user, err := store.GetUserByAccountID(gctx, accountID)
			if err != nil {
				if errors.Is(err, db.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("failed to fetch user %s: %w", accountID, err)
			}
			mu.Lock()
			users[accountID] = user
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

// resolveSlots fetches the slot list of every persisted shift, concurrently
func resolveSlots(ctx context.Context, store EnrichStore, shifts []schedule.ScheduledShift) (map[string][]db.ShiftSlot, error) {
	slotsByShiftID := make(map[string][]db.ShiftSlot)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for _, shift := range shifts {
		shiftID := shift.ShiftID()
		if shiftID == "" {
			continue
		}
		g.Go(func() error {
			slots, err := store.GetShiftSlotsByShift(gctx, shiftID)
			if err != nil {
				return fmt.Errorf("failed to fetch slots for shift %s: %w", shiftID, err)
			}
			mu.Lock()
			slotsByShiftID[shiftID] = slots
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slotsByShiftID, nil
}

// resolveAreaNames looks up each distinct area once. A failed lookup
// degrades to a placeholder label instead of failing the page.
func resolveAreaNames(ctx context.Context, store EnrichStore, logger *zap.Logger, launchPoints []db.LaunchPoint) map[string]string {
	names := make(map[string]string)
	for _, lp := range launchPoints {
		if _, done := names[lp.AreaID]; done {
			continue
		}
		name, err := store.GetAreaName(ctx, lp.AreaID)
		if err != nil || name == "" {
			logger.Warn("Area name lookup failed, using placeholder", zap.String("area_id", lp.AreaID), zap.Error(err))
			names[lp.AreaID] = areaNamePlaceholder
			continue
		}
		names[lp.AreaID] = name
	}
	return names
}
