package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sakif/omen/internal/model"
)

// renderOmen prints one omen, hiding the perspectives disabled in settings.
func renderOmen(w io.Writer, o model.Omen, settings model.AppSettings, favorite bool) {
	star := ""
	if favorite {
		star = " ★"
	}
	fmt.Fprintf(w, "%s%s\n", o.Name, star)
	fmt.Fprintln(w, strings.Repeat("=", len([]rune(o.Name))))

	if o.Interpretations != nil {
		section(w, "Indigenous", o.Interpretations.Indigenous)
		if settings.ShowCultural {
			section(w, "Cultural", o.Interpretations.Cultural)
		}
		if settings.ShowPsychological {
			section(w, "Psychological", o.Interpretations.Psychological)
		}
	} else {
		section(w, "Meaning", o.Meaning)
	}
	section(w, "History", o.History)

	if o.ImageURL != "" {
		fmt.Fprintf(w, "Image: %s\n", o.ImageURL)
	}
	if o.Query != "" && !model.SameName(o.Query, o.Name) {
		fmt.Fprintf(w, "Searched for: %q\n", o.Query)
	}
}

func section(w io.Writer, title, body string) {
	if body == "" {
		return
	}
	fmt.Fprintf(w, "\n%s:\n  %s\n", title, body)
}

// renderOmenList prints one line per omen, newest first.
func renderOmenList(w io.Writer, omens []model.Omen, empty string) {
	if len(omens) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for i, o := range omens {
		fmt.Fprintf(w, "%2d. %-24s %s\n", i+1, o.Name, formatTimestamp(o.Timestamp))
	}
}

func renderStrings(w io.Writer, items []string, empty string) {
	if len(items) == 0 {
		fmt.Fprintln(w, empty)
		return
	}
	for i, s := range items {
		fmt.Fprintf(w, "%2d. %s\n", i+1, s)
	}
}

func renderUser(w io.Writer, u *model.User) {
	if u == nil {
		fmt.Fprintln(w, "Not signed in (guest).")
		return
	}
	fmt.Fprintf(w, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(w, "  id:       %s\n", u.ID)
	practice := u.SpiritualPractice
	if practice == "" {
		practice = model.PracticeNone
	}
	fmt.Fprintf(w, "  practice: %s\n", practice)
}

func formatTimestamp(ms int64) string {
	if ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}
