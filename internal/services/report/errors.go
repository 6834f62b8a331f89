package report

import domainerrors "shellwatch/internal/errors"

var ErrUnknownAction = domainerrors.Validation("UNKNOWN_REVIEW_ACTION", "unknown review action")
