package model

// User represents the signed-in identity of the local client.
//
// ID is the partition key for every per-user collection (past omens,
// favorites, recent searches). A nil *User means "guest", which maps to the
// fixed guest partition.
//
// SpiritualPractice may be empty for users saved before the field existed;
// PracticeNone and empty both mean "no practice".
type User struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	PhotoURL          string            `json:"photoUrl"`
	SpiritualPractice SpiritualPractice `json:"spiritualPractice,omitempty"`
}

// SpiritualPractice identifies the user's tradition, used to tailor the
// cultural interpretation.
type SpiritualPractice string

const (
	PracticeNone                SpiritualPractice = "None"
	PracticeAgnosticism         SpiritualPractice = "Agnosticism"
	PracticeAsatru              SpiritualPractice = "Asatru"
	PracticeAtheism             SpiritualPractice = "Atheism"
	PracticeBuddhism            SpiritualPractice = "Buddhism"
	PracticeChristianity        SpiritualPractice = "Christianity"
	PracticeHinduism            SpiritualPractice = "Hinduism"
	PracticeIslam               SpiritualPractice = "Islam"
	PracticeJudaism             SpiritualPractice = "Judaism"
	PracticeShinto              SpiritualPractice = "Shinto"
	PracticeSikhism             SpiritualPractice = "Sikhism"
	PracticeTaoism              SpiritualPractice = "Taoism"
	PracticeWicca               SpiritualPractice = "Wicca"
	PracticeGeneralSpirituality SpiritualPractice = "General Spirituality"
)

// SpiritualPractices lists every accepted practice, in display order.
var SpiritualPractices = []SpiritualPractice{
	PracticeNone,
	PracticeAgnosticism,
	PracticeAsatru,
	PracticeAtheism,
	PracticeBuddhism,
	PracticeChristianity,
	PracticeHinduism,
	PracticeIslam,
	PracticeJudaism,
	PracticeShinto,
	PracticeSikhism,
	PracticeTaoism,
	PracticeWicca,
	PracticeGeneralSpirituality,
}

// ParseSpiritualPractice matches s against the known practices, ignoring case.
func ParseSpiritualPractice(s string) (SpiritualPractice, bool) {
	for _, p := range SpiritualPractices {
		if SameName(string(p), s) {
			return p, true
		}
	}
	return "", false
}

// Practice returns the practice to send with a query: empty when the user is
// a guest or has chosen None.
func (u *User) Practice() SpiritualPractice {
	if u == nil || u.SpiritualPractice == PracticeNone {
		return ""
	}
	return u.SpiritualPractice
}
