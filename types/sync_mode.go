package types

import "github.com/datazip-inc/olake-syncform/constants"

type SyncMode string

const (
	FULLREFRESH SyncMode = constants.DefaultSyncMode
	INCREMENTAL SyncMode = "incremental"
	CDC         SyncMode = "cdc"
	STRICTCDC   SyncMode = "strict_cdc"
)

func (m SyncMode) Valid() bool {
	switch m {
	case FULLREFRESH, INCREMENTAL, CDC, STRICTCDC:
		return true
	}

	return false
}
