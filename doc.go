// Package finassist holds the domain types and client-side logic of the
// financial assistant: the trading journal entities, the stock dashboard
// payloads, and the user preference model (KPI group selection and chart
// settings).
//
// Network access to the backend lives in the api subpackage; periodic
// refreshing in refresh; terminal rendering in renderer.
package finassist
