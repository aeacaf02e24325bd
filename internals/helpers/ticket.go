// file: internals/helpers/ticket.go
package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateTicketNumber membuat nomor tiket submission: SKR-YYYYMMDD-XXXXXX.
// Suffix 6 karakter hex uppercase; tabrakan jarang tapi mungkin, kolom
// ticket_number tetap unique, dan caller yang memutuskan retry atau tidak.
// Satu-satunya titik extension kalau nanti mau retry-with-regenerate.
func GenerateTicketNumber(now time.Time) string {
	entropy := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("SKR-%s-%s", now.Format("20060102"), strings.ToUpper(entropy[:6]))
}
