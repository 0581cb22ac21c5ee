// Package host answers the questions the toolchain search asks about the
// machine: which Windows SDK versions are registered, which fixed drives
// exist, and whether the OS is 64-bit.
//
// The Windows implementation reads HKLM\SOFTWARE\Microsoft\Windows Kits\Installed Roots
// and enumerates drives through the Win32 API. Other platforms report no SDKs.
package host
