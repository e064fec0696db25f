package api

import (
	"net/http"

	"golang.org/x/text/language"
)

type messageKey int

const (
	msgInvalidBody messageKey = iota
	msgValidationFailed
	msgInternalError
	msgUnauthenticated
	msgTooManyRequests

	msgRegistered
	msgEmailTaken
	msgWrongCredentials
	msgLoggedIn
	msgGoogleLoggedIn
	msgGoogleTokenInvalid
	msgLoggedOut
	msgProfileFetched
	msgProfileUpdated
	msgPasswordUpdated
	msgWrongPassword
	msgDevicesFetched
	msgDeviceRevoked
	msgDeviceNotFound
	msgLoggedOutAll
	msgAccountDeleted

	msgTodayEmpty
	msgTodayFetched
	msgDayNotFound
	msgDayFetched
	msgDaySaved
	msgReadingLogsFetched
	msgReadingLogAdded
	msgReadingLogDeleted
	msgRecitationLogsFetched
	msgRecitationLogAdded
	msgRecitationLogUpdated
	msgRecitationLogDeleted
	msgLogNotFound
	msgBookmarksFetched
	msgBookmarkExists
	msgBookmarkAdded
	msgBookmarkDeleted
	msgBookmarkNotFound
	msgStreakFetched
	msgMonthlySummary
	msgYearlySummary

	msgSurahListFetched
	msgSurahFetched
	msgSurahNotFound
	msgVersesFetched
	msgSearchFetched
	msgCityNotFound
	msgCitiesFetched
	msgScheduleFetched
	msgScheduleFailed
	msgTodayScheduleFetched
	msgTodayScheduleFailed
	msgDailyPrayersFetched
	msgMorningEveningFetched
	msgCoordinatesNotFound
	msgQiblaFetched
	msgQiblaFailed
)

var supportedLocales = []language.Tag{language.Indonesian, language.English}

var localeMatcher = language.NewMatcher(supportedLocales)

var messages = map[language.Tag]map[messageKey]string{
	language.Indonesian: {
		msgInvalidBody:      "Body permintaan tidak valid",
		msgValidationFailed: "Validasi gagal",
		msgInternalError:    "Terjadi kesalahan pada server",
		msgUnauthenticated:  "Tidak terautentikasi",
		msgTooManyRequests:  "Terlalu banyak permintaan, coba lagi nanti",

		msgRegistered:         "Registrasi berhasil",
		msgEmailTaken:         "Email sudah digunakan",
		msgWrongCredentials:   "Email atau password salah",
		msgLoggedIn:           "Login berhasil",
		msgGoogleLoggedIn:     "Login Google berhasil",
		msgGoogleTokenInvalid: "Token Google tidak valid",
		msgLoggedOut:          "Berhasil logout",
		msgProfileFetched:     "Profil berhasil diambil",
		msgProfileUpdated:     "Profil berhasil diperbarui",
		msgPasswordUpdated:    "Password berhasil diperbarui",
		msgWrongPassword:      "Password saat ini salah",
		msgDevicesFetched:     "Daftar perangkat berhasil diambil",
		msgDeviceRevoked:      "Perangkat berhasil dicabut",
		msgDeviceNotFound:     "Perangkat tidak ditemukan",
		msgLoggedOutAll:       "Berhasil logout dari semua perangkat",
		msgAccountDeleted:     "Akun berhasil dihapus",

		msgTodayEmpty:            "Belum ada catatan untuk hari ini",
		msgTodayFetched:          "Data hari ini berhasil diambil",
		msgDayNotFound:           "Catatan tidak ditemukan untuk tanggal ini",
		msgDayFetched:            "Data berhasil diambil",
		msgDaySaved:              "Catatan harian berhasil disimpan",
		msgReadingLogsFetched:    "Daftar log Quran berhasil diambil",
		msgReadingLogAdded:       "Log Quran berhasil ditambahkan",
		msgReadingLogDeleted:     "Log Quran berhasil dihapus",
		msgRecitationLogsFetched: "Daftar log dzikir berhasil diambil",
		msgRecitationLogAdded:    "Log dzikir berhasil ditambahkan",
		msgRecitationLogUpdated:  "Log dzikir berhasil diperbarui",
		msgRecitationLogDeleted:  "Log dzikir berhasil dihapus",
		msgLogNotFound:           "Log tidak ditemukan",
		msgBookmarksFetched:      "Daftar bookmark berhasil diambil",
		msgBookmarkExists:        "Bookmark sudah ada",
		msgBookmarkAdded:         "Bookmark berhasil ditambahkan",
		msgBookmarkDeleted:       "Bookmark berhasil dihapus",
		msgBookmarkNotFound:      "Bookmark tidak ditemukan",
		msgStreakFetched:         "Data streak berhasil diambil",
		msgMonthlySummary:        "Ringkasan bulanan berhasil diambil",
		msgYearlySummary:         "Ringkasan tahunan berhasil diambil",

		msgSurahListFetched:      "Daftar surah berhasil diambil",
		msgSurahFetched:          "Detail surah berhasil diambil",
		msgSurahNotFound:         "Surah tidak ditemukan",
		msgVersesFetched:         "Daftar ayat berhasil diambil",
		msgSearchFetched:         "Hasil pencarian berhasil diambil",
		msgCityNotFound:          "Kota tidak ditemukan",
		msgCitiesFetched:         "Daftar kota berhasil diambil",
		msgScheduleFetched:       "Jadwal sholat berhasil diambil",
		msgScheduleFailed:        "Gagal mengambil jadwal sholat",
		msgTodayScheduleFetched:  "Jadwal sholat hari ini berhasil diambil",
		msgTodayScheduleFailed:   "Gagal mengambil jadwal sholat hari ini",
		msgDailyPrayersFetched:   "Doa harian berhasil diambil",
		msgMorningEveningFetched: "Doa pagi petang berhasil diambil",
		msgCoordinatesNotFound:   "Koordinat kota tidak ditemukan",
		msgQiblaFetched:          "Arah kiblat berhasil diambil",
		msgQiblaFailed:           "Gagal mengambil arah kiblat",
	},
	language.English: {
		msgInvalidBody:      "Invalid request body",
		msgValidationFailed: "Validation failed",
		msgInternalError:    "Internal server error",
		msgUnauthenticated:  "Unauthenticated.",
		msgTooManyRequests:  "Too many requests, try again later",

		msgRegistered:         "Registration successful",
		msgEmailTaken:         "The email has already been taken.",
		msgWrongCredentials:   "The provided credentials are incorrect.",
		msgLoggedIn:           "Login successful",
		msgGoogleLoggedIn:     "Google login successful",
		msgGoogleTokenInvalid: "Invalid Google token",
		msgLoggedOut:          "Successfully logged out",
		msgProfileFetched:     "User profile retrieved successfully",
		msgProfileUpdated:     "Profile updated successfully",
		msgPasswordUpdated:    "Password updated successfully",
		msgWrongPassword:      "The current password is incorrect.",
		msgDevicesFetched:     "Devices retrieved successfully",
		msgDeviceRevoked:      "Device revoked successfully",
		msgDeviceNotFound:     "Device not found",
		msgLoggedOutAll:       "Logged out from all devices successfully",
		msgAccountDeleted:     "Account deleted successfully",

		msgTodayEmpty:            "Nothing recorded for today yet",
		msgTodayFetched:          "Today's record retrieved successfully",
		msgDayNotFound:           "No record found for this date",
		msgDayFetched:            "Record retrieved successfully",
		msgDaySaved:              "Daily record saved successfully",
		msgReadingLogsFetched:    "Quran logs retrieved successfully",
		msgReadingLogAdded:       "Quran log added successfully",
		msgReadingLogDeleted:     "Quran log deleted successfully",
		msgRecitationLogsFetched: "Dzikir logs retrieved successfully",
		msgRecitationLogAdded:    "Dzikir log added successfully",
		msgRecitationLogUpdated:  "Dzikir log updated successfully",
		msgRecitationLogDeleted:  "Dzikir log deleted successfully",
		msgLogNotFound:           "Log not found",
		msgBookmarksFetched:      "Bookmarks retrieved successfully",
		msgBookmarkExists:        "Bookmark already exists",
		msgBookmarkAdded:         "Bookmark added successfully",
		msgBookmarkDeleted:       "Bookmark deleted successfully",
		msgBookmarkNotFound:      "Bookmark not found",
		msgStreakFetched:         "Streak retrieved successfully",
		msgMonthlySummary:        "Monthly summary retrieved successfully",
		msgYearlySummary:         "Yearly summary retrieved successfully",

		msgSurahListFetched:      "Surah list retrieved successfully",
		msgSurahFetched:          "Surah detail retrieved successfully",
		msgSurahNotFound:         "Surah not found",
		msgVersesFetched:         "Verses retrieved successfully",
		msgSearchFetched:         "Search results retrieved successfully",
		msgCityNotFound:          "City not found",
		msgCitiesFetched:         "Cities retrieved successfully",
		msgScheduleFetched:       "Prayer schedule retrieved successfully",
		msgScheduleFailed:        "Failed to fetch prayer schedule",
		msgTodayScheduleFetched:  "Today's prayer schedule retrieved successfully",
		msgTodayScheduleFailed:   "Failed to fetch today's prayer schedule",
		msgDailyPrayersFetched:   "Daily prayers retrieved successfully",
		msgMorningEveningFetched: "Morning and evening dzikir retrieved successfully",
		msgCoordinatesNotFound:   "City coordinates not found",
		msgQiblaFetched:          "Qibla direction retrieved successfully",
		msgQiblaFailed:           "Failed to fetch qibla direction",
	},
}

// matchLocale picks the best supported locale for an Accept-Language header.
// Indonesian wins when nothing matches.
func matchLocale(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return supportedLocales[0]
	}
	_, idx, conf := localeMatcher.Match(tags...)
	if conf == language.No {
		return supportedLocales[0]
	}
	return supportedLocales[idx]
}

func message(r *http.Request, key messageKey) string {
	return messages[GetLocaleFromCtx(r.Context())][key]
}
