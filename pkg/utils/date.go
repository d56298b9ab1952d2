package utils

import "time"

const HumanTimestampLayout = "2006-01-02 15:04:05"

// EpochToHuman formata um timestamp Unix no fuso informado
func EpochToHuman(epoch int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	return time.Unix(epoch, 0).In(loc).Format(HumanTimestampLayout)
}
