package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"catatanku_backend/internals/features/users/auth/model"
)

// StartCleanupScheduler menjalankan pembersihan berkala:
// - token_blacklist yang sudah lewat TTL
// - refresh_tokens kadaluarsa
// - reminders yang sudah lewat due date dinonaktifkan
func StartCleanupScheduler(db *gorm.DB) {
	go func() {
		// Ambil TTL dari env (default: 7 hari)
		ttlDays := 7
		if val := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil {
				ttlDays = parsed
			}
		}

		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

			var expiredTokens []model.TokenBlacklist
			if err := db.
				Where("expired_at < ? AND deleted_at IS NULL", deleteBefore).
				Limit(100).
				Find(&expiredTokens).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Gagal ambil token kadaluarsa: %v", err)
			} else if len(expiredTokens) > 0 {
				if err := db.Delete(&expiredTokens).Error; err != nil {
					log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", err)
				} else {
					log.Printf("[CLEANUP] %d token kadaluarsa dihapus", len(expiredTokens))
				}
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			// refresh token expired langsung dihapus
			if err := db.Exec(`DELETE FROM refresh_tokens WHERE expires_at < now()`).Error; err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus refresh token: %v", err)
			}

			// reminder yang sudah lewat due date → nonaktif
			res := db.Exec(`
				UPDATE reminders
				SET reminder_is_active = FALSE, reminder_updated_at = now()
				WHERE reminder_is_active = TRUE
				  AND reminder_due_at < now()
				  AND reminder_deleted_at IS NULL`)
			if res.Error != nil {
				log.Printf("[CLEANUP ERROR] Gagal sweep reminder: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[CLEANUP] %d reminder kadaluarsa dinonaktifkan", res.RowsAffected)
			}

			// Jalankan tiap 24 jam
			time.Sleep(24 * time.Hour)
		}
	}()
}
