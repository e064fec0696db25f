package entity

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

// DateLayout is the calendar date format used on the wire and in cache keys.
const DateLayout = "2006-01-02"

type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	City         string     `json:"city"`
	Timezone     string     `json:"timezone"`
	Gender       *string    `json:"gender"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Avatar       *string    `json:"avatar"`
	Bio          *string    `json:"bio"`
	GoogleID     *string    `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AuthToken is one issued bearer token, shown to the user as a signed-in device.
type AuthToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"-"`
	Name       string     `json:"name"`
	LastUsedAt *time.Time `json:"last_used_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ObservanceDay is one user's record for one calendar date.
// QuranPages and DzikirTotal mirror the sums of the child logs.
type ObservanceDay struct {
	ID           int64            `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	Date         time.Time        `json:"-"`
	RamadhanYear int              `json:"ramadhan_year"`
	Fasting      bool             `json:"fasting"`
	Subuh        bool             `json:"subuh"`
	Dzuhur       bool             `json:"dzuhur"`
	Ashar        bool             `json:"ashar"`
	Maghrib      bool             `json:"maghrib"`
	Isya         bool             `json:"isya"`
	Tarawih      bool             `json:"tarawih"`
	QuranPages   int              `json:"quran_pages"`
	DzikirTotal  int              `json:"dzikir_total"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	QuranLogs    []*ReadingLog    `json:"quran_logs"`
	DzikirLogs   []*RecitationLog `json:"dzikir_logs"`
}

func (d *ObservanceDay) MarshalJSON() ([]byte, error) {
	type alias ObservanceDay
	return sonic.Marshal(&struct {
		*alias
		Date string `json:"date"`
	}{
		alias: (*alias)(d),
		Date:  d.Date.Format(DateLayout),
	})
}

// DayUpsert carries the writable part of an ObservanceDay.
// Nil totals keep whatever is stored.
type DayUpsert struct {
	UserID       uuid.UUID
	Date         time.Time
	RamadhanYear int
	Fasting      bool
	Subuh        bool
	Dzuhur       bool
	Ashar        bool
	Maghrib      bool
	Isya         bool
	Tarawih      bool
	QuranPages   *int
	DzikirTotal  *int
}

type ReadingLog struct {
	ID               int64     `json:"id"`
	DayID            int64     `json:"ramadhan_day_id"`
	Surah            int       `json:"surah"`
	Ayah             *int      `json:"ayah"`
	Pages            int       `json:"pages"`
	Minutes          int       `json:"minutes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	SurahName        string    `json:"surah_name,omitempty"`
	SurahNameArabic  string    `json:"surah_name_arabic,omitempty"`
	SurahVersesCount int       `json:"surah_verses_count,omitempty"`
	VerseText        string    `json:"verse_text,omitempty"`
}

type RecitationLog struct {
	ID        int64     `json:"id"`
	DayID     int64     `json:"ramadhan_day_id"`
	Type      string    `json:"type"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Bookmark struct {
	ID              int64     `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Surah           int       `json:"surah"`
	Ayah            *int      `json:"ayah"`
	Page            *int      `json:"page"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	SurahName       string    `json:"surah_name,omitempty"`
	SurahNameArabic string    `json:"surah_name_arabic,omitempty"`
}

type Streak struct {
	UserID         uuid.UUID  `json:"user_id"`
	CurrentStreak  int        `json:"current_streak"`
	LongestStreak  int        `json:"longest_streak"`
	LastActiveDate *time.Time `json:"last_active_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ObservanceTotals is an aggregate over a set of days.
type ObservanceTotals struct {
	Days        int
	Fasting     int
	Subuh       int
	Dzuhur      int
	Ashar       int
	Maghrib     int
	Isya        int
	Tarawih     int
	QuranPages  int
	DzikirTotal int
}

type PrayerCounts struct {
	Subuh   int `json:"subuh"`
	Dzuhur  int `json:"dzuhur"`
	Ashar   int `json:"ashar"`
	Maghrib int `json:"maghrib"`
	Isya    int `json:"isya"`
	Tarawih int `json:"tarawih"`
}

type MonthlySummary struct {
	Month       string       `json:"bulan"`
	Days        int          `json:"total_hari"`
	Fasting     int          `json:"total_puasa"`
	Prayers     PrayerCounts `json:"shalat"`
	QuranPages  int          `json:"total_halaman_quran"`
	DzikirTotal int          `json:"total_dzikir"`
}

type YearlySummary struct {
	Year        int `json:"tahun"`
	Days        int `json:"total_hari"`
	Fasting     int `json:"total_puasa"`
	QuranPages  int `json:"total_halaman_quran"`
	DzikirTotal int `json:"total_dzikir"`
}
