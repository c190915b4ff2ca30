package productController

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// nextProductID prefers the database sequence so ids stay dense and
// collision-free. When the sequence is unavailable (fresh database,
// non-postgres backend) it falls back to a timestamp plus a random
// suffix.
func nextProductID(db *gorm.DB) string {
	var seq int64
	if err := db.Raw("SELECT nextval('product_id_seq')").Scan(&seq).Error; err == nil && seq > 0 {
		return fmt.Sprintf("PRD-%06d", seq)
	} else if err != nil {
		log.Printf("product_id_seq unavailable, using fallback id: %v", err)
	}
	return fmt.Sprintf("PRD-%s-%s", time.Now().Format("20060102150405"), uuid.NewString()[:8])
}
