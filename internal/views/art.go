package views

// Logo is the header banner.
const Logo = `
 ____                          _
|  _ \ ___  _ __ ___   ___   __| | ___  _ __ ___
| |_) / _ \| '_ ` + "`" + ` _ \ / _ \ / _` + "`" + ` |/ _ \| '__/ _ \
|  __/ (_) | | | | | | (_) | (_| | (_) | | | (_) |
|_|   \___/|_| |_| |_|\___/ \__,_|\___/|_|  \___/
`
