package wire

import "strconv"

// A ResponseCode is a precheck or post-consensus status reported by a node.
type ResponseCode int32

// Response codes.
const (
	ResponseOK                             ResponseCode = 0
	ResponseInvalidTransaction             ResponseCode = 1
	ResponsePayerAccountNotFound           ResponseCode = 2
	ResponseInvalidNodeAccount             ResponseCode = 3
	ResponseTransactionExpired             ResponseCode = 4
	ResponseInvalidTransactionStart        ResponseCode = 5
	ResponseInvalidTransactionDuration     ResponseCode = 6
	ResponseInvalidSignature               ResponseCode = 7
	ResponseMemoTooLong                    ResponseCode = 8
	ResponseInsufficientTxFee              ResponseCode = 9
	ResponseInsufficientPayerBalance       ResponseCode = 10
	ResponseDuplicateTransaction           ResponseCode = 11
	ResponseBusy                           ResponseCode = 12
	ResponseNotSupported                   ResponseCode = 13
	ResponseInvalidFileID                  ResponseCode = 14
	ResponseInvalidAccountID               ResponseCode = 15
	ResponseInvalidContractID              ResponseCode = 16
	ResponseInvalidTransactionID           ResponseCode = 17
	ResponseReceiptNotFound                ResponseCode = 18
	ResponseRecordNotFound                 ResponseCode = 19
	ResponseInvalidSolidityID              ResponseCode = 20
	ResponseUnknown                        ResponseCode = 21
	ResponseSuccess                        ResponseCode = 22
	ResponseFailInvalid                    ResponseCode = 23
	ResponseFailFee                        ResponseCode = 24
	ResponseFailBalance                    ResponseCode = 25
	ResponseKeyRequired                    ResponseCode = 26
	ResponseBadEncoding                    ResponseCode = 27
	ResponseInsufficientAccountBalance     ResponseCode = 28
	ResponseInvalidSolidityAddress         ResponseCode = 29
	ResponseInsufficientGas                ResponseCode = 30
	ResponseContractSizeLimitExceeded      ResponseCode = 31
	ResponseLocalCallModificationException ResponseCode = 32
	ResponseContractRevertExecuted         ResponseCode = 33
	ResponseContractExecutionException     ResponseCode = 34
	ResponseInvalidReceivingNodeAccount    ResponseCode = 35
	ResponseMissingQueryHeader             ResponseCode = 36
	ResponseAccountUpdateFailed            ResponseCode = 37
	ResponseInvalidKeyEncoding             ResponseCode = 38
	ResponseNullSolidityAddress            ResponseCode = 39
	ResponseContractUpdateFailed           ResponseCode = 40
	ResponseInvalidQueryHeader             ResponseCode = 41
	ResponseInvalidFeeSubmitted            ResponseCode = 42
	ResponseInvalidPayerSignature          ResponseCode = 43
	ResponseKeyNotProvided                 ResponseCode = 44
	ResponseInvalidExpirationTime          ResponseCode = 45
	ResponseNoWACLKey                      ResponseCode = 46
	ResponseFileContentEmpty               ResponseCode = 47
	ResponseInvalidAccountAmounts          ResponseCode = 48
	ResponseEmptyTransactionBody           ResponseCode = 49
	ResponseInvalidTransactionBody         ResponseCode = 50
)

var responseCodeNames = [...]string{
	"OK",
	"INVALID_TRANSACTION",
	"PAYER_ACCOUNT_NOT_FOUND",
	"INVALID_NODE_ACCOUNT",
	"TRANSACTION_EXPIRED",
	"INVALID_TRANSACTION_START",
	"INVALID_TRANSACTION_DURATION",
	"INVALID_SIGNATURE",
	"MEMO_TOO_LONG",
	"INSUFFICIENT_TX_FEE",
	"INSUFFICIENT_PAYER_BALANCE",
	"DUPLICATE_TRANSACTION",
	"BUSY",
	"NOT_SUPPORTED",
	"INVALID_FILE_ID",
	"INVALID_ACCOUNT_ID",
	"INVALID_CONTRACT_ID",
	"INVALID_TRANSACTION_ID",
	"RECEIPT_NOT_FOUND",
	"RECORD_NOT_FOUND",
	"INVALID_SOLIDITY_ID",
	"UNKNOWN",
	"SUCCESS",
	"FAIL_INVALID",
	"FAIL_FEE",
	"FAIL_BALANCE",
	"KEY_REQUIRED",
	"BAD_ENCODING",
	"INSUFFICIENT_ACCOUNT_BALANCE",
	"INVALID_SOLIDITY_ADDRESS",
	"INSUFFICIENT_GAS",
	"CONTRACT_SIZE_LIMIT_EXCEEDED",
	"LOCAL_CALL_MODIFICATION_EXCEPTION",
	"CONTRACT_REVERT_EXECUTED",
	"CONTRACT_EXECUTION_EXCEPTION",
	"INVALID_RECEIVING_NODE_ACCOUNT",
	"MISSING_QUERY_HEADER",
	"ACCOUNT_UPDATE_FAILED",
	"INVALID_KEY_ENCODING",
	"NULL_SOLIDITY_ADDRESS",
	"CONTRACT_UPDATE_FAILED",
	"INVALID_QUERY_HEADER",
	"INVALID_FEE_SUBMITTED",
	"INVALID_PAYER_SIGNATURE",
	"KEY_NOT_PROVIDED",
	"INVALID_EXPIRATION_TIME",
	"NO_WACL_KEY",
	"FILE_CONTENT_EMPTY",
	"INVALID_ACCOUNT_AMOUNTS",
	"EMPTY_TRANSACTION_BODY",
	"INVALID_TRANSACTION_BODY",
}

// String implements fmt.Stringer.
func (c ResponseCode) String() string {
	if c >= 0 && int(c) < len(responseCodeNames) {
		return responseCodeNames[c]
	}
	return "ResponseCode(" + strconv.Itoa(int(c)) + ")"
}
