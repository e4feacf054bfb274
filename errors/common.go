package errors

func InvalidBodyErr(err error) error {
	return E(Invalid, "invalid request body", err)
}

func ValidationFailedErr(err error) error {
	return E(Invalid, "validation failed", err)
}

func EmptyParamErr(field string) error {
	ve := ValidationErrs()
	ve.Add(field, "cannot be empty")
	return E(Invalid, "validation failed", ve.Err())
}

func MissingAuthorizationErr() error {
	return E(Unauthorized, "request does not have the required authorization header", nil)
}

func MerchantMismatchErr() error {
	return E(Forbidden, "authorization does not match an active merchant", nil)
}

func OwnershipMismatchErr() error {
	return E(Forbidden, "transaction does not match merchant", nil)
}

func TransactionNotFoundErr(id string) error {
	ve := ValidationErrs()
	ve.Add("transaction_id", id)
	return E(NotFound, "transaction does not exist", ve.Err())
}

func RewardNotFoundErr(transactionID string) error {
	ve := ValidationErrs()
	ve.Add("transaction_id", transactionID)
	return E(NotFound, "reward does not exist", ve.Err())
}

func TransactionNotSettledErr(id string) error {
	ve := ValidationErrs()
	ve.Add("transaction_id", id)
	return E(Conflict, "transaction has not been processed", ve.Err())
}
