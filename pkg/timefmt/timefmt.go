package timefmt

import (
	"fmt"
	"time"
)

// FormatEventTime 把活動時間轉成畫面顯示用的相對時間字串
// 例: "Today at 6:00 PM" / "Tomorrow at 6:00 PM" / "Mon, Jan 2 at 6:00 PM"
func FormatEventTime(t, now time.Time) string {
	t = t.In(now.Location())
	clock := t.Format("3:04 PM")

	switch daysBetween(now, t) {
	case 0:
		return "Today at " + clock
	case 1:
		return "Tomorrow at " + clock
	case -1:
		return "Yesterday at " + clock
	}

	if t.Year() == now.Year() {
		return t.Format("Mon, Jan 2") + " at " + clock
	}
	return t.Format("Mon, Jan 2, 2006") + " at " + clock
}

// daysBetween 以日曆日為單位計算差距 (忽略時分秒)
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// FormatDuration 把分鐘數轉成 "1h 30min" 格式; 不足一小時只顯示分鐘
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0min"
	}
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dmin", h, m)
	}
}
