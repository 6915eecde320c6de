package config

import "time"

// Application identity and files.
const (
	AppName        = "resultpro"
	DBFileName     = "resultpro.db"
	LogFileName    = "resultpro.log"
	ConfigFileName = "config.yaml"
)

// Snapshot keys. They match the keys the browser tool kept in localStorage.
const (
	KeyName    = "gpaName"
	KeyCourses = "gpaCourses"
	KeyResult  = "gpaResult"
)

// Remote service.
const (
	DefaultBaseURL   = "https://schoolresultpro-backend.onrender.com"
	CalculatePath    = "/calculate_gpa"
	GeneratePDFPath  = "/generate_pdf"
	RequestIDHeader  = "X-Request-ID"
	MaxErrorBodySize = 4096
)

// Form bounds. Score bounds are hints unless strict range checking is enabled.
const (
	ScoreMin  = 0
	ScoreMax  = 100
	CreditMin = 1

	DefaultStudentName  = "Student"
	DefaultFileStem     = "student"
	PDFFileSuffix       = "_result.pdf"
	DBOperationTimeout  = 5 * time.Second
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultTheme        = "default"
	DefaultDirPerm      = 0o755
	DefaultDownloadPerm = 0o644
)

// User-facing messages.
const (
	MsgInvalidForm     = "Please fill all fields correctly for at least one course."
	MsgConnectionError = "Error: Could not connect to the server. Make sure the backend is running."
	MsgInvalidPDFForm  = "Please fill all course fields correctly before exporting PDF."
	MsgEmptyPDF        = "The PDF file is empty. Please check your input data."
	MsgPDFFailed       = "Failed to download PDF. Make sure the backend server is running and you entered valid course data."
	MsgPDFSaved        = "PDF downloaded! Saved to %s"
	MsgConfirmClear    = "Are you sure you want to clear all data? This cannot be undone."
	MsgBusy            = "A request is already in progress."
)
