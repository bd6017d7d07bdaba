package stats

// RecentDropsLimit is how many of the latest drops a snapshot carries.
const RecentDropsLimit = 10
