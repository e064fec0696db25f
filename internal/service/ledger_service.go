package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/ChairulIkhsan23/niyyah-backend/internal/error_values"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/islamic"
	"github.com/ChairulIkhsan23/niyyah-backend/internal/repository"
	"github.com/ChairulIkhsan23/niyyah-backend/pkg/entity"
)

type LedgerService struct {
	days      repository.DaysRepositoryI
	streaks   repository.StreaksRepositoryI
	quran     QuranLookup
	defaultTZ string
	now       func() time.Time
}

func NewLedgerService(days repository.DaysRepositoryI, streaks repository.StreaksRepositoryI, quran QuranLookup, defaultTZ string) *LedgerService {
	if days == nil || streaks == nil {
		log.Fatal("provided nil days or streaks repository")
	}
	return &LedgerService{
		days:      days,
		streaks:   streaks,
		quran:     quran,
		defaultTZ: defaultTZ,
		now:       time.Now,
	}
}

func (ls *LedgerService) Today(ctx context.Context, uid uuid.UUID, tz string) (*entity.ObservanceDay, error) {
	today := todayIn(ls.now(), loadLocation(tz, ls.defaultTZ))
	return ls.dayWithLogs(ctx, uid, today)
}

func (ls *LedgerService) GetByDate(ctx context.Context, uid uuid.UUID, date string) (*entity.ObservanceDay, error) {
	parsed, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return nil, errorvalues.NewValidationError("date", "must be a date in YYYY-MM-DD format")
	}
	return ls.dayWithLogs(ctx, uid, parsed)
}

func (ls *LedgerService) dayWithLogs(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.ObservanceDay, error) {
	day, err := ls.days.GetByDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		return nil, errors.New("days repository error: " + err.Error())
	}
	if err = ls.loadLogs(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

func (ls *LedgerService) loadLogs(ctx context.Context, day *entity.ObservanceDay) error {
	reading, err := ls.days.ReadingLogs(ctx, day.ID)
	if err != nil {
		return errors.New("days repository error: " + err.Error())
	}
	recitation, err := ls.days.RecitationLogs(ctx, day.ID)
	if err != nil {
		return errors.New("days repository error: " + err.Error())
	}
	for _, l := range reading {
		ls.enrichReadingLog(ctx, l)
	}
	day.QuranLogs = reading
	day.DzikirLogs = recitation
	return nil
}

// UpsertDay writes the day and, when fasting is set, advances the streak in the same transaction.
func (ls *LedgerService) UpsertDay(ctx context.Context, uid uuid.UUID, tz string, req *UpsertDayRequest) (*entity.ObservanceDay, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		return nil, errorvalues.NewValidationError("date", "must be a date in YYYY-MM-DD format")
	}
	if date.After(todayIn(ls.now(), loadLocation(tz, ls.defaultTZ))) {
		return nil, errorvalues.NewValidationError("date", errorvalues.ErrFutureDate.Error())
	}
	day, err := ls.days.Upsert(ctx, &entity.DayUpsert{
		UserID:       uid,
		Date:         date,
		RamadhanYear: date.Year(),
		Fasting:      req.Fasting,
		Subuh:        req.Subuh,
		Dzuhur:       req.Dzuhur,
		Ashar:        req.Ashar,
		Maghrib:      req.Maghrib,
		Isya:         req.Isya,
		Tarawih:      req.Tarawih,
		QuranPages:   req.QuranPages,
		DzikirTotal:  req.DzikirTotal,
	}, AdvanceStreak)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("days repository error: " + err.Error())
	}
	if err = ls.loadLogs(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

func (ls *LedgerService) ownDay(ctx context.Context, uid uuid.UUID, dayID int64) (*entity.ObservanceDay, error) {
	day, err := ls.days.GetByID(ctx, uid, dayID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		return nil, errors.New("days repository error: " + err.Error())
	}
	return day, nil
}

func (ls *LedgerService) ReadingLogs(ctx context.Context, uid uuid.UUID, dayID int64) ([]*entity.ReadingLog, error) {
	if _, err := ls.ownDay(ctx, uid, dayID); err != nil {
		return nil, err
	}
	logs, err := ls.days.ReadingLogs(ctx, dayID)
	if err != nil {
		return nil, errors.New("days repository error: " + err.Error())
	}
	for _, l := range logs {
		ls.enrichReadingLog(ctx, l)
	}
	return logs, nil
}

func (ls *LedgerService) AddReadingLog(ctx context.Context, uid uuid.UUID, dayID int64, req *ReadingLogRequest) (*entity.ReadingLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	l := &entity.ReadingLog{
		DayID:   dayID,
		Surah:   req.Surah,
		Ayah:    req.Ayah,
		Pages:   req.Pages,
		Minutes: req.Minutes,
	}
	if err := ls.days.AddReadingLog(ctx, uid, l); err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		return nil, errors.New("days repository error: " + err.Error())
	}
	ls.enrichReadingLog(ctx, l)
	return l, nil
}

func (ls *LedgerService) DeleteReadingLog(ctx context.Context, uid uuid.UUID, dayID, logID int64) error {
	if _, err := ls.ownDay(ctx, uid, dayID); err != nil {
		return err
	}
	err := ls.days.DeleteReadingLog(ctx, uid, dayID, logID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("days repository error: " + err.Error())
	}
	return nil
}

func (ls *LedgerService) RecitationLogs(ctx context.Context, uid uuid.UUID, dayID int64) ([]*entity.RecitationLog, error) {
	if _, err := ls.ownDay(ctx, uid, dayID); err != nil {
		return nil, err
	}
	logs, err := ls.days.RecitationLogs(ctx, dayID)
	if err != nil {
		return nil, errors.New("days repository error: " + err.Error())
	}
	return logs, nil
}

func (ls *LedgerService) AddRecitationLog(ctx context.Context, uid uuid.UUID, dayID int64, req *RecitationLogRequest) (*entity.RecitationLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	l := &entity.RecitationLog{
		DayID: dayID,
		Type:  req.Type,
		Count: req.Count,
	}
	if err := ls.days.AddRecitationLog(ctx, uid, l); err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			return nil, err
		}
		return nil, errors.New("days repository error: " + err.Error())
	}
	return l, nil
}

func (ls *LedgerService) UpdateRecitationLog(ctx context.Context, uid uuid.UUID, dayID, logID int64, req *UpdateRecitationLogRequest) (*entity.RecitationLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := ls.ownDay(ctx, uid, dayID); err != nil {
		return nil, err
	}
	l, err := ls.days.UpdateRecitationLog(ctx, uid, dayID, logID, req.Count)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return nil, err
		}
		return nil, errors.New("days repository error: " + err.Error())
	}
	return l, nil
}

func (ls *LedgerService) DeleteRecitationLog(ctx context.Context, uid uuid.UUID, dayID, logID int64) error {
	if _, err := ls.ownDay(ctx, uid, dayID); err != nil {
		return err
	}
	err := ls.days.DeleteRecitationLog(ctx, uid, dayID, logID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("days repository error: " + err.Error())
	}
	return nil
}

func (ls *LedgerService) Streak(ctx context.Context, uid uuid.UUID) (*entity.Streak, error) {
	streak, err := ls.streaks.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streak, nil
}

// MonthlySummary aggregates the current calendar month in the user's timezone.
func (ls *LedgerService) MonthlySummary(ctx context.Context, uid uuid.UUID, tz string) (*entity.MonthlySummary, error) {
	today := todayIn(ls.now(), loadLocation(tz, ls.defaultTZ))
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	totals, err := ls.days.TotalsBetween(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("days repository error: " + err.Error())
	}
	return &entity.MonthlySummary{
		Month:   today.Format("January 2006"),
		Days:    totals.Days,
		Fasting: totals.Fasting,
		Prayers: entity.PrayerCounts{
			Subuh:   totals.Subuh,
			Dzuhur:  totals.Dzuhur,
			Ashar:   totals.Ashar,
			Maghrib: totals.Maghrib,
			Isya:    totals.Isya,
			Tarawih: totals.Tarawih,
		},
		QuranPages:  totals.QuranPages,
		DzikirTotal: totals.DzikirTotal,
	}, nil
}

func (ls *LedgerService) YearlySummary(ctx context.Context, uid uuid.UUID, year int) (*entity.YearlySummary, error) {
	totals, err := ls.days.TotalsForYear(ctx, uid, year)
	if err != nil {
		return nil, errors.New("days repository error: " + err.Error())
	}
	return &entity.YearlySummary{
		Year:        year,
		Days:        totals.Days,
		Fasting:     totals.Fasting,
		QuranPages:  totals.QuranPages,
		DzikirTotal: totals.DzikirTotal,
	}, nil
}

func (ls *LedgerService) SurahList(ctx context.Context) []islamic.SurahOption {
	if ls.quran == nil {
		return []islamic.SurahOption{}
	}
	return ls.quran.SurahSelector(context.WithoutCancel(ctx))
}

// enrichReadingLog fills surah details and verse text. Lookup failures leave a plain surah label.
// Lookups drop the caller's deadline, the Quran client bounds them itself.
func (ls *LedgerService) enrichReadingLog(ctx context.Context, l *entity.ReadingLog) {
	l.SurahName = "Surah " + strconv.Itoa(l.Surah)
	if ls.quran == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	if info, ok := ls.quran.SurahBasicInfo(ctx, l.Surah); ok {
		l.SurahName = info.Name
		l.SurahNameArabic = info.NameArabic
		l.SurahVersesCount = info.VersesCount
	}
	if l.Ayah != nil {
		if verse, ok := ls.quran.VerseText(ctx, l.Surah, *l.Ayah); ok {
			l.VerseText = verse.TextArabic
		}
	}
}
