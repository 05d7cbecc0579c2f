package format

import "fmt"

// FormatBytes renders a byte count in human-readable binary units (KB, MB,
// GB, ...). Values below one kilobyte are shown as whole bytes; larger values
// are shown with one decimal place.
//
// Parameters:
//   - n: The number of bytes.
//
// Returns:
//   - string: The formatted size, for example "512 B" or "5.0 KB".
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
