package domain

import "errors"

// Kind classifies a domain error so callers can react without matching codes.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindUnauthorized
	KindNotFound
	KindValidation
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error is a domain error with a stable machine-readable code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Detail  string
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Is matches errors by code, so a copy made by WithDetail still matches its sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// WithDetail returns a copy of e carrying an extra human-readable detail.
func (e *Error) WithDetail(detail string) *Error {
	cp := *e
	cp.Detail = detail
	return &cp
}

// Domain errors.
var (
	ErrUnauthenticated = newError(KindUnauthenticated, "unauthenticated", "utilisateur non authentifié")
	ErrInvalidRole     = newError(KindUnauthenticated, "invalid_role", "rôle inconnu")
	ErrForbidden       = newError(KindUnauthorized, "forbidden", "action non autorisée pour ce rôle")
	ErrNotParticipant  = newError(KindUnauthorized, "not_participant", "seul le participant peut effectuer cette action")

	ErrEventNotFound         = newError(KindNotFound, "event_not_found", "événement non trouvé")
	ErrParticipationNotFound = newError(KindNotFound, "participation_not_found", "participation non trouvée")
	ErrUserNotFound          = newError(KindNotFound, "user_not_found", "agent non trouvé")

	ErrInvalidEvent           = newError(KindValidation, "invalid_event", "événement invalide")
	ErrInvalidEventTransition = newError(KindValidation, "invalid_event_transition", "changement de statut de l'événement impossible")
	ErrEventNotOpen           = newError(KindValidation, "event_not_open", "les inscriptions ne sont pas ouvertes")
	ErrCapacityExceeded       = newError(KindValidation, "capacity_exceeded", "l'événement est complet")
	ErrInvalidTargetStatus    = newError(KindValidation, "invalid_target_status", "statut de validation invalide")
	ErrExcuseReasonRequired   = newError(KindValidation, "excuse_reason_required", "un motif est requis pour une absence excusée")
	ErrCancellationClosed     = newError(KindValidation, "cancellation_closed", "le désistement n'est plus possible pour cet événement")
	ErrParticipationCancelled = newError(KindValidation, "participation_cancelled", "la participation est annulée")
	ErrCheckInClosed          = newError(KindValidation, "check_in_closed", "le pointage n'est pas ouvert pour cet événement")
	ErrCateringUnavailable    = newError(KindValidation, "catering_unavailable", "cet événement ne propose pas de repas")
	ErrUnknownMenu            = newError(KindValidation, "unknown_menu", "menu inconnu pour cet événement")
	ErrReportUnavailable      = newError(KindValidation, "report_unavailable", "le rapport de manœuvre n'est disponible que pour une manœuvre")
	ErrUnsupportedFormat      = newError(KindValidation, "unsupported_format", "format d'export non supporté")
	ErrInvalidPersonnel       = newError(KindValidation, "invalid_personnel", "fiche agent invalide")

	ErrParticipationExists = newError(KindConflict, "participation_exists", "participant déjà inscrit")
)

// KindOf returns the kind of err; errors that are not domain errors are internal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// Code returns the domain error code carried by err, or "" when there is none.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
