package providers

import "time"

// ResolveTimezone returns a location for a tz string, or nil if invalid.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}

// TimezoneOrDefault resolves tz, falling back to fallback and then UTC.
func TimezoneOrDefault(tz, fallback string) *time.Location {
	if loc := ResolveTimezone(tz); loc != nil {
		return loc
	}
	if loc := ResolveTimezone(fallback); loc != nil {
		return loc
	}
	return time.UTC
}
