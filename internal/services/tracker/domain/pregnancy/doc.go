// Package pregnancy models the pregnancy tracking slice: the current week,
// the due date, the daily logs (weight, meals, water, sleep, exercise,
// medicines, medical reports) and the hospital bag checklist.
//
// Logs are ordered by insertion. Adds append, updates replace in place and
// deletes remove by id; updates and deletes of an unknown id change nothing.
package pregnancy
