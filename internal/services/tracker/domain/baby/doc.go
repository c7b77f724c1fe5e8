// Package baby models the newborn care slice: the baby profile, the care
// logs (feeding, sleep, potty, playtime, growth) and the vaccination schedule.
package baby
