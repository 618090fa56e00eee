package domain

// DefaultEntryNodeID is the entry used by graph builders when none is given.
const DefaultEntryNodeID = "start"
